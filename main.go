package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/FitrahHaque/Huffman-Engine/engine"
)

var Commands = [...]string{"compress", "decompress", "demo", "help"}

func main() {
	if err := run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	application := args[0]
	commandFS := flag.NewFlagSet(application, flag.ContinueOnError)
	compressCmd := commandFS.Bool(Commands[0], false, "Compress File")
	decompressCmd := commandFS.Bool(Commands[1], false, "Decompress File")
	demoCmd := commandFS.Bool(Commands[2], false, "Encode and decode a sample text")
	helpCmd := commandFS.Bool(Commands[3], false, "Help")

	if len(args) == 1 {
		return fmt.Errorf("please provide a command, one of: %s", strings.Join(Commands[:], ", "))
	}
	if err := commandFS.Parse(args[1:2]); err != nil {
		return err
	}
	commandsSelected := countTrue([]bool{*compressCmd, *decompressCmd, *demoCmd, *helpCmd})
	if commandsSelected != 1 {
		return fmt.Errorf("specify a single command, one of: %s", strings.Join(Commands[:], ", "))
	}

	switch {
	case *helpCmd:
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
		fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
		fmt.Fprintf(os.Stderr, "Flag:\n")
		commandFS.SetOutput(os.Stderr)
		commandFS.PrintDefaults()
		return nil
	case *demoCmd:
		return runDemo(args[2:])
	default:
		return runFiles(application, *compressCmd, args[2:])
	}
}

func runFiles(application string, compress bool, args []string) error {
	name := Commands[1]
	if compress {
		name = Commands[0]
	}
	fileFS := flag.NewFlagSet(name, flag.ContinueOnError)
	fileFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] <file(s)>\n", application, name)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		fileFS.PrintDefaults()
	}
	algorithm := fileFS.String("algorithm", "huffman", fmt.Sprintf("Which algorithm(s) to use, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	deleteAfter := fileFS.Bool("delete", false, "Delete input file(s) after processing")
	outputFileExtension := fileFS.String("outfileext", ".rsn", "File extension used for the compressed result")
	quiet := fileFS.Bool("quiet", false, "Suppress progress and reports")
	if err := fileFS.Parse(args); err != nil {
		return err
	}
	if fileFS.NArg() == 0 {
		return fmt.Errorf("no file provided for %s", name)
	}
	files := strings.Split(strings.Join(fileFS.Args(), ","), ",")
	trimSpace(files)
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("could not open the provided file %s: %w", f, err)
		}
	}
	algorithmsChosen := strings.Split(*algorithm, ",")
	trimSpace(algorithmsChosen)

	engine.Quiet = *quiet
	var err error
	if compress {
		err = engine.CompressFiles(algorithmsChosen, files, *outputFileExtension)
	} else {
		err = engine.DecompressFiles(algorithmsChosen, files, *outputFileExtension)
	}
	if err != nil {
		return err
	}
	if *deleteAfter {
		return deleteFiles(files)
	}
	return nil
}

func runDemo(args []string) error {
	demoFS := flag.NewFlagSet(Commands[2], flag.ContinueOnError)
	text := demoFS.String("text", engine.DefaultDemoText, "Text to encode and decode")
	if err := demoFS.Parse(args); err != nil {
		return err
	}
	result, err := engine.Demo(*text)
	if err != nil {
		return err
	}
	return result.Print(os.Stdout)
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func deleteFiles(files []string) error {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}
