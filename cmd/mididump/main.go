package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/lzqlzzq/minimidi/pkg/midi"
	"go.uber.org/zap"
)

var (
	inFlag      = flag.String("i", "", "Input midi file")
	listFlag    = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

var dumpLog = zap.NewNop()

func dumpFile(name string) error {
	log := dumpLog.Named("dumpFile")
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return err
	}

	view, err := midi.NewMidiFileView(data)
	if err != nil {
		return err
	}
	log.Debug("header", zap.String("name", name), zap.String("format", view.Header.Format.String()), zap.Int("trackCount", view.TrackCount))

	file, err := midi.NewMidiFile(data)
	if err != nil {
		return err
	}

	fmt.Printf("== %s ==\n", name)
	fmt.Print(file.String())
	return nil
}

func readList(file *os.File) []string {
	var names []string
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	return names
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i file.mid\n       %s -l midi_list.txt\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inFlag == "" && *listFlag == "" {
		flag.Usage()
		return
	}

	if *verboseFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		dumpLog = l
	}

	var names []string
	if *inFlag != "" {
		names = append(names, *inFlag)
	}
	if *listFlag != "" {
		f, err := os.Open(*listFlag)
		if err != nil {
			log.Fatal(err)
		}
		names = append(names, readList(f)...)
		f.Close()
	}

	for _, name := range names {
		if err := dumpFile(name); err != nil {
			log.Printf("%s: %v", name, err)
		}
	}
}
