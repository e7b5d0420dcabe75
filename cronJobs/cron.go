package cronJobs

import (
	"context"
	"time"

	"github.com/addressly/address-server/dbHelpers"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

const auditTimeout = 30 * time.Second

// LogRelationStats logs the address count and the relationship-row count per
// type, so drift in the join table shows up in the logs.
func LogRelationStats(addresses *dbHelpers.AddressRepo, relations *dbHelpers.UserAddressRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	addressCount, err := addresses.Count(ctx)
	if err != nil {
		logrus.Errorf("relation stats: failed to count addresses %v", err)
		return
	}
	counts, err := relations.CountByType(ctx)
	if err != nil {
		logrus.Errorf("relation stats: failed to count relations %v", err)
		return
	}
	logrus.Infof("relation stats: %d addresses", addressCount)
	for _, c := range counts {
		logrus.Infof("relation stats: %d %s relations", c.Count, c.RelationshipType)
	}
}

// InitiateCronJobs registers and starts the scheduled jobs.
func InitiateCronJobs(addresses *dbHelpers.AddressRepo, relations *dbHelpers.UserAddressRepo) error {
	logrus.Infof("initiating cron jobs")
	relationStats := cron.New()
	err := relationStats.AddFunc("@hourly", func() {
		LogRelationStats(addresses, relations)
	})
	if err != nil {
		logrus.Errorf("cron job initiation failed %v", err)
		return err
	}
	relationStats.Start()

	logrus.Infof("cron job initiation successful")
	return nil
}
