package proofgen

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "proofgen")
