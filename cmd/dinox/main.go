// Command dinox saves Markdown content to the Dinox note-taking app.
//
// Usage:
//
//	dinox path/to/file.md [--title "Title"] [--tags "tag1,tag2"]
//	dinox --content "markdown content" [--title "Title"] [--tags "tag1,tag2"]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tabortao/Tabor-Skills/dinox"
	"github.com/tabortao/Tabor-Skills/internal/dotenv"
)

func main() {
	fs := flag.NewFlagSet("dinox", flag.ExitOnError)
	content := fs.String("content", "", "Markdown content directly (instead of a file)")
	title := fs.String("title", "", "Title for the note")
	tags := fs.String("tags", "", "Comma-separated tags (e.g. 'AI,notes')")
	token := fs.String("token", "", "Dinox API token (or set DINOX_TOKEN)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dinox - save Markdown content to the Dinox note-taking app

Usage:
  dinox [flags] <file.md>
  dinox [flags] --content "# Hello"

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	file := ""
	if argv := fs.Args(); len(argv) > 0 {
		file = argv[0]
	}

	if file == "" && *content == "" {
		fmt.Fprintln(os.Stderr, "Error: either FILE or --content must be provided")
		fs.Usage()
		os.Exit(1)
	}
	if file != "" && *content != "" {
		fmt.Fprintln(os.Stderr, "Error: cannot use both FILE and --content")
		fs.Usage()
		os.Exit(1)
	}

	if err := run(file, *content, *title, parseTags(*tags), *token); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s Error: %v\n", color.RedString("x"), err)
		// Full diagnostic trace for bug reports.
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(file, content, title string, tags []string, token string) error {
	if cwd, err := os.Getwd(); err == nil {
		// Best effort; credentials may come from the environment.
		dotenv.Load(cwd)
	}

	client, err := dinox.New(token)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var result *dinox.Result
	if content != "" {
		result, err = client.Save(ctx, dinox.Note{Title: title, Content: content, Tags: tags})
	} else {
		result, err = client.SaveFile(ctx, file, title, tags)
	}
	if err != nil {
		return err
	}

	divider := strings.Repeat("=", 50)
	fmt.Println("\n" + divider)
	color.Green("Saved to Dinox!")
	fmt.Println(divider)
	if result.NoteID != "" {
		fmt.Printf("Note ID: %s\n", result.NoteID)
	}
	fmt.Printf("Method: %s\n", result.Method)
	fmt.Println(divider)
	return nil
}

// parseTags splits a comma-separated tag list, trimming whitespace and
// dropping empty entries.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
