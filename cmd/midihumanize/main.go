package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lzqlzzq/minimidi/pkg/midi"
)

var (
	databaseFlag = flag.String("d", "", "The path to the velocity database json file")
	inFlag       = flag.String("i", "", "Input midi file")
	outFlag      = flag.String("o", "", "Output midi file")
	minFlag      = flag.Int("min", 0, "Min velocity")
	maxFlag      = flag.Int("max", 127, "Max velocity")
)

// velocityMap holds, per pitch and note direction ("on" or "off"), the set
// of velocities observed across a corpus of real performances.
type velocityMap map[uint8]map[string][]int

func importDatabase(name string) (velocityMap, error) {
	raw, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var data velocityMap
	err = json.Unmarshal(raw, &data)
	return data, err
}

func randVelocity(velocities []int, min, max int) uint8 {
	rand.Seed(time.Now().UTC().UnixNano())
	for {
		velocity := velocities[rand.Intn(len(velocities))]
		if velocity > min && velocity < max {
			return uint8(velocity)
		}
	}
}

// humanize rewrites the velocity of every NoteOn/NoteOff in file whose pitch
// has velocities in data for that direction, using a random draw from
// them, in place, using MidiFile.Bytes() to re-encode afterward
// rather than patching a single byte offset in the original file (the
// owning representation has no stable byte offsets to patch).
func humanize(file *midi.MidiFile, data velocityMap, min, max int) {
	for ti := range file.Tracks {
		messages := file.Tracks[ti].Messages
		for mi, m := range messages {
			switch m.Type() {
			case midi.NoteOnType:
				n := midi.NoteOn(m)
				if velocities, ok := data[n.Pitch()]["on"]; ok && len(velocities) > 0 {
					v := randVelocity(velocities, min, max)
					messages[mi] = midi.Message(midi.NewNoteOn(m.Time, n.Channel(), n.Pitch(), v))
				}
			case midi.NoteOffType:
				n := midi.NoteOff(m)
				if velocities, ok := data[n.Pitch()]["off"]; ok && len(velocities) > 0 {
					v := randVelocity(velocities, min, max)
					messages[mi] = midi.Message(midi.NewNoteOff(m.Time, n.Channel(), n.Pitch(), v))
				}
			}
		}
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -d db.json -i in.mid -o out.mid\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *databaseFlag == "" || *inFlag == "" || *outFlag == "" {
		flag.Usage()
		return
	}

	data, err := importDatabase(*databaseFlag)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := ioutil.ReadFile(*inFlag)
	if err != nil {
		log.Fatal(err)
	}

	file, err := midi.NewMidiFile(raw)
	if err != nil {
		log.Fatal(err)
	}

	humanize(&file, data, *minFlag, *maxFlag)

	if err := ioutil.WriteFile(*outFlag, file.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}
