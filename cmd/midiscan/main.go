package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"go.uber.org/zap"
)

const maxGoroutines = 10

var (
	listFlag    = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag     = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag     = flag.String("o", "", "Output velocity database json file")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			out <- scanner.Text()
		}
		close(out)
	}()

	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -l midi_list.txt -o velocities.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" || *outFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	if *verboseFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		enableDebugLogging(l)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	paths := readList(f)

	notes, err := buildNoteMap(context.Background(), paths, *maxFlag)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.Marshal(notes.flatten())
	if err != nil {
		log.Fatal(err)
	}

	if err := ioutil.WriteFile(*outFlag, out, 0o644); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s (%d distinct pitches)", *outFlag, len(notes))
}
