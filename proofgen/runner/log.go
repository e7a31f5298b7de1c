package runner

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "runner")
