package config

import (
	"fmt"
	"os"
	"strings"
)

const DEFAULT_WORKBOOK_PATH string = "./registrations.xlsx"
const DEFAULT_LISTEN_ADDR string = ":3000"

type Config struct {
	ListenAddr    string
	WorkbookPath  string
	SessionSecret string
}

func FromEnv() Config {
	var c Config

	c.ListenAddr = strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if c.ListenAddr == "" {
		c.ListenAddr = DEFAULT_LISTEN_ADDR
	}

	c.WorkbookPath = strings.TrimSpace(os.Getenv("WORKBOOK_PATH"))
	if c.WorkbookPath == "" {
		c.WorkbookPath = DEFAULT_WORKBOOK_PATH
	}

	c.SessionSecret, _ = GetSecret("SESSION_SECRET")

	return c
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
