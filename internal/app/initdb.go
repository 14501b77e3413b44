package app

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/talkincode/clothesstore/config"
	"github.com/talkincode/clothesstore/internal/domain"
	"github.com/talkincode/clothesstore/internal/pricing"
	"github.com/talkincode/clothesstore/pkg/common"
)

func getDatabase(cfg config.DBConfig) *gorm.DB {
	loglevel := gormlogger.Error
	if cfg.Debug {
		loglevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(loglevel),
		TranslateError: true,
	})
	if err != nil {
		zap.S().Panicf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Panicf("failed to get database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

type settingSchema struct {
	Key         string
	Default     string
	Description string
}

// defaultSettings are created on first boot when missing
var defaultSettings = []settingSchema{
	{Key: "cart.EmptyCartTTLDays", Default: "7", Description: "Days before an abandoned empty cart is purged"},
	{Key: "catalog.MostSearchedLimit", Default: "5", Description: "Number of products in the most-searched listing"},
}

func (a *Application) checkSettings() {
	for sortid, schema := range defaultSettings {
		category, name := splitSettingKey(schema.Key)
		if category == "" {
			zap.L().Warn("invalid setting key format", zap.String("key", schema.Key))
			continue
		}

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				ID:     common.UUIDint64(),
				Sort:   sortid,
				Type:   category,
				Name:   name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized setting",
				zap.String("key", schema.Key),
				zap.String("default", schema.Default))
		}
	}
}

func splitSettingKey(key string) (category, name string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:]
		}
	}
	return "", key
}

// checkProducts initializes demo catalog products
func (a *Application) checkProducts() {
	type seed struct {
		name     string
		list     decimal.Decimal
		discount decimal.Decimal
	}
	seeds := []seed{
		{name: "demo-shirt-basic", list: decimal.NewFromFloat(19.99), discount: decimal.Zero},
		{name: "demo-shirt-premium", list: decimal.NewFromFloat(49.50), discount: decimal.NewFromInt(10)},
		{name: "demo-jeans-classic", list: decimal.NewFromInt(100), discount: decimal.NewFromInt(20)},
		{name: "demo-jacket-winter", list: decimal.NewFromFloat(159.90), discount: decimal.NewFromInt(25)},
	}

	for _, s := range seeds {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", s.name).Count(&count)
		if count == 0 {
			now := time.Now()
			p := domain.Product{
				ID:              common.UUIDint64(),
				ProductID:       common.UUID(),
				Name:            s.name,
				ListPrice:       s.list,
				DiscountPercent: s.discount,
				SalePrice:       pricing.SalePrice(s.list, s.discount),
				Active:          true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", s.name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", s.name))
			}
		}
	}
}
