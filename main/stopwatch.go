package main

import (
	"fmt"
	"os"

	"github.com/connorkeevill/stopwatch"
	"github.com/connorkeevill/stopwatch/phase"
	"github.com/proidiot/gone/log"
)

const defaultConfigPath = "config.json"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	r, e := os.Open(configPath)
	if e != nil {
		panic(e)
	}
	defer r.Close()

	s, e := phase.SequenceFromReader(r)
	if e != nil {
		panic(e)
	}

	_ = log.Notice(
		fmt.Sprintf(
			"running %d phases from %s",
			len(s),
			configPath,
		),
	)

	recorder := stopwatch.NewRecorder()
	if e := s.Run(recorder); e != nil {
		panic(e)
	}

	fmt.Print(recorder.TimingTrace())
}
