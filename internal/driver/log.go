package driver

import (
	"io"

	"github.com/mliezun/jackal/internal/config"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the batch logger from the configured level and format
func NewLogger(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.Out = out
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	}
	return log, nil
}
