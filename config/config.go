package config

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	AppName  string `yaml:"appname" json:"appname"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host         string `yaml:"host" json:"host"`
	Port         int    `yaml:"port" json:"port"`
	Debug        bool   `yaml:"debug" json:"debug"`
	CartIDLength int    `yaml:"cart_id_length" json:"cart_id_length"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0o755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0o755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		AppName:  "ClothesStore",
		Location: "Asia/Shanghai",
		Workdir:  "/var/clothesstore",
		Debug:    true,
	},
	Web: WebConfig{
		Host:         "0.0.0.0",
		Port:         1816,
		Debug:        true,
		CartIDLength: 3,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "clothesstore",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/clothesstore/clothesstore.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig loads the yaml configuration file and applies
// CLOTHESSTORE_ environment overrides on top of it.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "clothesstore.yml"
	}
	cfg := new(AppConfig)
	if _, err := os.Stat(cfile); err == nil {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	} else {
		cfg = DefaultAppConfig
	}

	cfg.initDirs()

	setEnvValue("CLOTHESSTORE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("CLOTHESSTORE_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("CLOTHESSTORE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("CLOTHESSTORE_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvIntValue("CLOTHESSTORE_WEB_CART_ID_LENGTH", func(v int) { cfg.Web.CartIDLength = v })

	setEnvValue("CLOTHESSTORE_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("CLOTHESSTORE_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("CLOTHESSTORE_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("CLOTHESSTORE_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("CLOTHESSTORE_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("CLOTHESSTORE_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("CLOTHESSTORE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("CLOTHESSTORE_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })

	if cfg.Web.CartIDLength <= 0 {
		cfg.Web.CartIDLength = 3
	}

	return cfg
}

// DSN builds the connection string for the configured database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Shanghai",
		c.Host, c.Port, c.User, c.Passwd, c.Name)
}
