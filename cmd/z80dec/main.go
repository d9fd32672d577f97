package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oisee/z80core/decode"
	"github.com/oisee/z80core/internal/config"
	"github.com/oisee/z80core/ir"
	"github.com/oisee/z80core/tables"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80dec",
		Short: "Z80 opcode decoder — bytes in, IR trace out",
	}

	var logLevel string
	var cfgFile string
	var loaded config.Config
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML/JSON/TOML)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logrus.SetLevel(level)
		loaded = cfg
		return nil
	}

	// decode command
	var start uint16
	var asHex bool

	decodeCmd := &cobra.Command{
		Use:   "decode <rom-file>",
		Short: "Decode a byte sequence into an IR trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := loadROM(args[0], asHex)
			if err != nil {
				return fmt.Errorf("loading rom: %w", err)
			}

			if !cmd.Flags().Changed("start") {
				start = loaded.StartAddress
			}
			result, err := decode.Block(rom, start)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			for _, instr := range result.Instructions {
				fmt.Printf("%04X  %s\n", instr.PC, instr.Name)
				fmt.Print(indent(ir.Sprint(instr.IR)))
			}
			fmt.Printf("terminated: %s, end PC: %04X\n", result.TerminatedBy, result.EndPC)
			return nil
		},
	}
	decodeCmd.Flags().Uint16Var(&start, "start", 0, "starting address")
	decodeCmd.Flags().BoolVar(&asHex, "hex", false, "treat the file contents as a hex dump rather than raw bytes")

	// tables command
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect the opcode tables",
	}

	var prefix string
	tablesDumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump one opcode table's 256 entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := selectTable(prefix)
			if err != nil {
				return err
			}
			for i, entry := range table {
				state := "terminator"
				if entry.Ast != nil {
					state = "implemented"
				}
				fmt.Printf("%02X  %-20s operand=%-6v %s\n", i, entry.Name, entry.Operand, state)
			}
			return nil
		},
	}
	tablesDumpCmd.Flags().StringVar(&prefix, "prefix", "main", "table to dump: main, cb, ed, dd, fd, ddcb, fdcb")
	tablesCmd.AddCommand(tablesDumpCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the z80dec version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("z80dec (z80core)")
			return nil
		},
	}

	rootCmd.AddCommand(decodeCmd, tablesCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func selectTable(prefix string) ([256]tables.Opcode, error) {
	switch strings.ToLower(prefix) {
	case "main":
		return tables.Main, nil
	case "cb":
		return tables.CB, nil
	case "ed":
		return tables.ED, nil
	case "dd":
		return tables.IX, nil
	case "fd":
		return tables.IY, nil
	case "ddcb":
		return tables.IXCB, nil
	case "fdcb":
		return tables.IYCB, nil
	default:
		return [256]tables.Opcode{}, fmt.Errorf("unknown table prefix %q", prefix)
	}
}

// loadROM reads a file as either raw bytes or, with asHex, a
// whitespace-separated hex byte dump (the DD CB FE 46 style used in
// the decode tests, for pasting a one-off sequence from a command
// line without a binary file).
func loadROM(path string, asHex bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !asHex {
		return data, nil
	}
	fields := strings.Fields(string(data))
	rom := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing hex byte %q: %w", f, err)
		}
		rom = append(rom, byte(v))
	}
	return rom, nil
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
