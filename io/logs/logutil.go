// Package logs configures the logrus formatter and an optional persistent
// log file whose content is identical to stdout.
package logs

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	joonix "github.com/joonix/log"
	"github.com/sirupsen/logrus"
	"github.com/wcproof/credfetch/io/file"
	"github.com/wercker/journalhook"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Supported values of the --log-format flag.
const (
	FormatText    = "text"
	FormatFluentd = "fluentd"
	FormatJSON    = "json"
	// FormatJournald sends entries to the systemd journal instead of stdout.
	FormatJournald = "journald"
)

// Formats lists every supported log format.
var Formats = []string{FormatText, FormatFluentd, FormatJSON, FormatJournald}

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigureFormatter sets the global logrus formatter for the named format.
// Colors are disabled when logs are also persisted to a file, since the ANSI
// codes would end up in it.
func ConfigureFormatter(format string, disableColors bool) error {
	switch format {
	case FormatText:
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = disableColors
		logrus.SetFormatter(formatter)
	case FormatFluentd:
		logrus.SetFormatter(joonix.NewFormatter())
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case FormatJournald:
		journalhook.Enable()
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	return nil
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	expanded, err := file.ExpandPath(logFileName)
	if err != nil {
		return err
	}
	if err := file.MkdirAll(filepath.Dir(expanded)); err != nil {
		return err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, file.ReadWritePermissions) // #nosec G304
	if err != nil {
		return err
	}

	addLogWriter(f)

	logrus.Info("File logging initialized")
	return nil
}

// MaskCredentialsLogging masks the url credentials before logging for security purpose
// [scheme:][//[userinfo@]host][/]path[?query][#fragment] -->  [scheme:][//[***]host][/path][?***][#***]
// The path is kept since it carries the endpoint and slot; query strings
// are where hosted beacon APIs put access tokens.
// if the format is not matched nothing is done, string is returned as is.
func MaskCredentialsLogging(currUrl string) string {
	maskedUrl := currUrl
	u, err := url.Parse(currUrl)
	if err != nil {
		return currUrl // Not a URL, nothing to do
	}
	if u.User != nil {
		maskedUrl = strings.Replace(maskedUrl, u.User.String(), "***", 1)
	}
	if len(u.RawQuery) > 0 {
		maskedUrl = strings.Replace(maskedUrl, "?"+u.RawQuery, "?***", 1)
	}
	if len(u.Fragment) > 0 {
		maskedUrl = strings.Replace(maskedUrl, "#"+u.EscapedFragment(), "#***", 1)
	}
	return maskedUrl
}
