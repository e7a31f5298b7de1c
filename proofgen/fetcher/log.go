package fetcher

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "fetcher")
