package utils

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
)

// LogFile sends the standard logger to file, since the terminal belongs to
// the ui while it runs. An empty file discards log output.
func LogFile(file string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if file == "" {
		log.SetOutput(ioutil.Discard)
		return ioutil.NopCloser(nil), nil
	}
	err := os.MkdirAll(path.Dir(file), 0755)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
