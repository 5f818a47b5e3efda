// Package monitor implements the line-oriented interactive prompt that runs
// after a loaded program halts: memory inspection, register/flag status,
// and a couple of terminal conveniences.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hbishop/p6502/cpu"
)

// Inspector is the subset of *cpu.Cpu the monitor needs. Accepting an
// interface rather than the concrete type keeps the monitor testable
// without a real Bus.
type Inspector interface {
	Observe() cpu.Snapshot
	MemoryWindow(start, end uint16) []byte
}

// Run drives the REPL, reading commands from in and writing responses to
// out, until "exit" or "quit" is entered or in reaches EOF.
func Run(c Inspector, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "]] ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "mem", "memory":
			start, end := parseRange(fields[1:])
			fmt.Fprintf(out, "Listing memory from $%x to $%x:\n", start, end)
			dumpMemory(c, out, start, end)

		case "status", "stat":
			fmt.Fprintln(out, status(c.Observe()))

		case "clear":
			fmt.Fprint(out, "\x1b[2J\x1b[H")

		case "help":
			fmt.Fprintln(out, "Basic commands are:")
			fmt.Fprintln(out, "\tmem START [END]: lists the memory contents of the specified addresses.")
			fmt.Fprintln(out, "\tstatus: outputs the registers, status flags, and program counter.")
			fmt.Fprintln(out, "\tclear: clears the screen.")
			fmt.Fprintln(out, "\texit | quit: terminates this utility.")

		case "exit", "quit":
			return nil
		}
	}
}

// parseRange parses the "mem START [END]" command's arguments. END defaults
// to START+16 when omitted, per the monitor's documented command set.
func parseRange(args []string) (start, end uint16) {
	if len(args) > 0 {
		if v, err := strconv.ParseUint(args[0], 16, 16); err == nil {
			start = uint16(v)
		}
	}
	end = start + 16
	if len(args) > 1 {
		if v, err := strconv.ParseUint(args[1], 16, 16); err == nil {
			end = uint16(v)
		}
	}
	return start, end
}

func dumpMemory(c Inspector, out io.Writer, start, end uint16) {
	if end < start {
		return
	}
	window := c.MemoryWindow(start, end)
	for i := 0; i < len(window); i += 16 {
		row := window[i:min(i+16, len(window))]
		fmt.Fprintf(out, "%04x | ", int(start)+i)
		for _, b := range row {
			fmt.Fprintf(out, "%02x ", b)
		}
		fmt.Fprintln(out)
	}
}

func status(s cpu.Snapshot) string {
	return fmt.Sprintf(
		"PC=$%04x, SP=$%02x\nA=$%02x, X=$%02x, Y=$%02x\nFlags=%08b",
		s.PC, s.SP, s.A, s.X, s.Y, s.Flags,
	)
}
