// Package prometheus holds the metrics plumbing shared by credfetch
// commands. A run is too short lived to be scraped, so metrics are written
// once at exit in the node-exporter textfile collector format.
package prometheus

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wcproof/credfetch/io/file"
)

// WriteTextfile gathers every metric from g and writes it to path. The
// write goes through a temporary file, so a concurrently running
// node-exporter never reads a half written file.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	expanded, err := file.ExpandPath(path)
	if err != nil {
		return err
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(expanded, g); err != nil {
		return errors.Wrapf(err, "could not write metrics to %s", expanded)
	}
	return nil
}
