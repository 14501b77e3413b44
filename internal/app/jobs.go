package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/clothesstore/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@daily", func() {
		a.SchedPurgeEmptyCarts()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedPurgeEmptyCarts removes abandoned carts that never received a line.
// Carts have no delete endpoint, so this is the only cleanup path.
func (a *Application) SchedPurgeEmptyCarts() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	idays := a.ConfigMgr().GetInt("cart", "EmptyCartTTLDays")
	if idays <= 0 {
		idays = 7
	}
	cutoff := time.Now().Add(-time.Hour * 24 * time.Duration(idays))

	result := a.gormDB.
		Where("created_at < ?", cutoff).
		Where("id NOT IN (?)", a.gormDB.Model(&domain.CartItem{}).Select("cart_ref_id")).
		Delete(&domain.Cart{})
	if result.Error != nil {
		zap.L().Error("failed to purge empty carts", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("purged empty carts", zap.Int64("count", result.RowsAffected))
	}
}
