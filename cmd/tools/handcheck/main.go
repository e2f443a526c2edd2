// Command handcheck talks to an Inspire hand directly over its serial link,
// bypassing the manager daemon. It reads the actual angles, forces, error
// codes and driver temperatures, and can optionally sweep the fingers or run
// an on-board action sequence. Useful for bench diagnosis of a hand that
// misbehaves under the daemon.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/banshee-data/dexhand/internal/inspire"
	"github.com/banshee-data/dexhand/internal/units"
)

var (
	portPath = flag.String("port", "/dev/ttyUSB0", "Hand serial device")
	baud     = flag.Int("baud", inspire.DefaultBaudRate, "Serial baud rate")
	deviceID = flag.Int("id", 1, "Hand bus device id")
	sweep    = flag.Bool("sweep", false, "Sweep all fingers closed then open")
	action   = flag.Int("action", -1, "Run an on-board action sequence and exit")
	clear    = flag.Bool("clear", false, "Clear latched error state first")
	speed    = flag.Int("speed", 500, "Finger speed for the sweep, 0..1000")
)

func main() {
	flag.Parse()

	if *deviceID < 0 || *deviceID > 255 {
		log.Fatalf("device id %d out of range", *deviceID)
	}

	port, err := inspire.OpenPort(*portPath, *baud)
	if err != nil {
		log.Fatalf("failed to open hand port: %v", err)
	}
	hand := inspire.NewHand(port, byte(*deviceID))
	defer hand.Close()

	if *clear {
		if err := hand.ClearErrors(); err != nil {
			log.Fatalf("failed to clear errors: %v", err)
		}
		log.Print("cleared latched error state")
	}

	report(hand)

	if *action >= 0 {
		if *action > 255 {
			log.Fatalf("action sequence %d out of range", *action)
		}
		if err := hand.RunAction(byte(*action)); err != nil {
			log.Fatalf("failed to run action %d: %v", *action, err)
		}
		log.Printf("running action sequence %d", *action)
		return
	}

	if *sweep {
		var speeds [inspire.FingerCount]int16
		for i := range speeds {
			speeds[i] = units.ClampHandRange(*speed)
		}
		if err := hand.SetSpeeds(speeds); err != nil {
			log.Fatalf("failed to set speeds: %v", err)
		}

		for _, target := range []int{0, units.HandRangeMax} {
			var angles [inspire.FingerCount]int16
			for i := range angles {
				angles[i] = units.ClampHandRange(target)
			}
			log.Printf("commanding all fingers to %d", target)
			if err := hand.SetAngles(angles); err != nil {
				log.Fatalf("failed to set angles: %v", err)
			}
			time.Sleep(2 * time.Second)
			report(hand)
		}
	}
}

func report(hand *inspire.Hand) {
	if angles, err := hand.Angles(); err != nil {
		log.Printf("read angles: %v", err)
	} else {
		log.Printf("angles: %v", angles)
	}
	if forces, err := hand.Forces(); err != nil {
		log.Printf("read forces: %v", err)
	} else {
		log.Printf("forces: %v", forces)
	}
	if codes, err := hand.ErrorCodes(); err != nil {
		log.Printf("read error codes: %v", err)
	} else {
		log.Printf("error codes: %v", codes)
	}
	if temps, err := hand.Temperatures(); err != nil {
		log.Printf("read temperatures: %v", err)
	} else {
		log.Printf("temperatures: %v C", temps)
	}
}
