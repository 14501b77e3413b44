package app

import (
	"errors"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talkincode/clothesstore/internal/domain"
)

// ConfigManager reads runtime settings from the sys_config table and
// coerces values on access. Settings are small and read rarely, every
// lookup goes to the store.
type ConfigManager struct {
	app *Application
}

func NewConfigManager(app *Application) *ConfigManager {
	return &ConfigManager{app: app}
}

func (cm *ConfigManager) GetString(category, name string) string {
	var cfg domain.SysConfig
	err := cm.app.gormDB.
		Where("type = ? and name = ?", category, name).
		First(&cfg).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("failed to read setting",
				zap.String("category", category),
				zap.String("name", name),
				zap.Error(err))
		}
		return ""
	}
	return cfg.Value
}

func (cm *ConfigManager) GetInt(category, name string) int {
	return cast.ToInt(cm.GetString(category, name))
}

func (cm *ConfigManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(cm.GetString(category, name))
}

func (cm *ConfigManager) GetBool(category, name string) bool {
	return cast.ToBool(cm.GetString(category, name))
}

// SetValue creates or updates one setting row
func (cm *ConfigManager) SetValue(category, name, value string) error {
	var cfg domain.SysConfig
	err := cm.app.gormDB.
		Where("type = ? and name = ?", category, name).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cm.app.gormDB.Create(&domain.SysConfig{
			Type:  category,
			Name:  name,
			Value: value,
		}).Error
	}
	if err != nil {
		return err
	}
	return cm.app.gormDB.Model(&domain.SysConfig{}).
		Where("id = ?", cfg.ID).
		Update("value", value).Error
}
