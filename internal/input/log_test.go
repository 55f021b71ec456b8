package input

import (
	"io"
	"log"
	"testing"
)

func captureLog(t *testing.T, w io.Writer) {
	t.Helper()
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(w)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
}
