package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/keysound/file"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt <chart>",
	Short: "Edits a chart interactively",
	Long: `Edits a chart interactively. The chart is reloaded before every
command, so it can be edited in another program at the same time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openForEdit(cmd.OutOrStdout(), args[0])
		if err != nil {
			return err
		}
		p := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout(), file: b}
		p.loop()
		return nil
	},
}

const menu = `
What would you like to do:
    r - Replace one or more keysounds with another one
    u - Modify unused keysounds
    a - Remove unused audio
    q - Quit the program

`

type prompter struct {
	in   *bufio.Reader
	out  io.Writer
	file *file.BmsFile
	eof  bool
}

func (p *prompter) loop() {
	for !p.eof {
		fmt.Fprint(p.out, menu)
		input := p.readString()
		if input == "" {
			continue
		}

		switch input[0] {
		case 'r':
			p.replace()
		case 'u':
			p.unused()
		case 'a':
			p.orphans()
		case 'q':
			return
		default:
			fmt.Fprintf(p.out, "Unknown command: %c\n", input[0])
		}
	}
}

func (p *prompter) readString() string {
	s, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(s)
}

func (p *prompter) choice(question string) bool {
	fmt.Fprintf(p.out, "\n%v (y/n)? ", question)
	return strings.HasPrefix(strings.ToLower(p.readString()), "y")
}

func (p *prompter) replace() {
	fmt.Fprint(p.out, "Enter the ID (eg. 0A) of the keysound which you would like to replace with: ")
	newID, err := parseID(p.readString())
	if err != nil {
		fmt.Fprintf(p.out, "Unable to convert line to id: %v\n", err)
		return
	}

	fmt.Fprint(p.out, "Enter the ID's which you would like replaced (eg. 0B,0C,0D,0E): ")
	oldIDs, err := parseIDs(p.readString())
	if err != nil {
		fmt.Fprintf(p.out, "Error getting input ids: %v\n", err)
		return
	}

	if _, err := replaceKeysounds(p.out, p.file, newID, oldIDs); err != nil {
		fmt.Fprintf(p.out, "Error details: %v\n", err)
	}
}

func (p *prompter) unused() {
	if err := p.file.Reload(); err != nil {
		fmt.Fprintf(p.out, "Error details: %v\n", err)
		return
	}

	unused := listUnused(p.out, p.file)
	if len(unused) == 0 {
		return
	}
	if !p.choice("Would you like to remove them from the .bms file") {
		return
	}
	deleteAudio := p.choice("Would you like to delete the corresponding audio files for the unused keysounds")
	if err := removeKeysounds(p.out, p.file, unused, deleteAudio); err != nil {
		fmt.Fprintf(p.out, "Error details: %v\n", err)
	}
}

func (p *prompter) orphans() {
	if err := p.file.Reload(); err != nil {
		fmt.Fprintf(p.out, "Error details: %v\n", err)
		return
	}

	orphans, err := findOrphans(p.out, p.file)
	if err != nil {
		fmt.Fprintf(p.out, "Error details: %v\n", err)
		return
	}
	if len(orphans) == 0 {
		return
	}
	if p.choice("Would you like to delete them") {
		deleteOrphanFiles(p.out, orphans)
	}
}
