package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/config"
)

// newLogger returns a logrus logger writing to w with the configured level
// and formatter. Text output is colored only when w is a terminal.
func newLogger(c config.Log, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if strings.EqualFold(c.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
		return l, nil
	}
	tty := isTerminal(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableQuote:  true,
		ForceColors:   tty,
		DisableColors: !tty,
		FullTimestamp: tty,
		PadLevelText:  true,
	})
	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
