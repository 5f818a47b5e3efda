package main

import (
	"fmt"
	"os"

	"github.com/hbishop/p6502/cpu"
	"github.com/hbishop/p6502/loader"
	"github.com/hbishop/p6502/mem"
	"github.com/hbishop/p6502/monitor"

	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "p6502",
		Usage:   "A (not yet) cycle-accurate MOS 6502 CPU emulator.",
		Version: "0.1",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "addresses",
				Aliases: []string{"a"},
				Usage:   "the input file's first column holds addresses, not program bytes",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "load the program into the interactive TUI debugger instead of running it",
			},
		},
		ArgsUsage: "INPUT",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	inputPath := c.Args().First()
	if inputPath == "" {
		return cli.Exit("INPUT is required: path to a hex-dump program", 1)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("unable to open %q: %v", inputPath, err), 1)
	}
	defer f.Close()

	program, err := loader.Load(f, c.Bool("addresses"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("unable to parse %q: %v", inputPath, err), 1)
	}

	machine := &cpu.Cpu{Bus: mem.New()}
	machine.Reset()

	if c.Bool("debug") {
		machine.Debug(program, cpu.ProgramStart)
		return nil
	}

	machine.LoadProgram(program, cpu.ProgramStart)
	if err := machine.Run(1_000_000); err != nil {
		return cli.Exit(fmt.Sprintf("execution failed: %v", err), 1)
	}

	fmt.Printf("The program finished at PC=$%04x. The interactive prompt will now appear.\n", machine.PC)
	return monitor.Run(machine, os.Stdin, os.Stdout)
}
