// Command shaderpackc is the shaderpack preprocessor CLI.
//
// Usage:
//
//	shaderpackc [options] <input>
//
// Examples:
//
//	shaderpackc scene.glsl                    # Parse and report diagnostics
//	shaderpackc -o out scene.glsl             # Write <program>.vert/.frag
//	shaderpackc -I shaders -I common scene.glsl
//	shaderpackc -watch -exec "go generate ./..." scene.glsl
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-shellwords"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shaderpack"
	"github.com/gogpu/shaderpack/compose"
)

var (
	outDir     = flag.String("o", "", "directory for <program>.vert/.frag output")
	typesFile  = flag.String("types", "", "write the GLSL→host type mapping as JSON to this file")
	configFile = flag.String("config", "", "TOML config file (flags override config values)")
	execCmd    = flag.String("exec", "", "command to run after each successful build")
	watch      = flag.Bool("watch", false, "watch the input file's directory and rebuild on change")
	depth      = flag.Int("depth", compose.DefaultMaxIncludeDepth, "include nesting limit")
	verbose    = flag.Bool("v", false, "verbose logging")
	quiet      = flag.Bool("q", false, "log errors only")
	version    = flag.Bool("version", false, "print version")
)

const shaderpackVersion = "0.1.0-dev"

// config mirrors the CLI flags in TOML form. Explicit flags win over
// config values; search paths from both sources are combined, config
// entries first.
type config struct {
	SearchPaths []string `toml:"search_paths"`
	OutDir      string   `toml:"out_dir"`
	TypesFile   string   `toml:"types_file"`
	Exec        string   `toml:"exec"`
}

func main() {
	var searchPaths []string
	flag.Func("I", "add a search path for include directives (repeatable)", func(dir string) error {
		searchPaths = append(searchPaths, dir)
		return nil
	})
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shaderpackc version %s\n", shaderpackVersion)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	if *quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}
	inputPath := args[0]

	if *configFile != "" {
		cfg, err := loadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
		searchPaths = append(cfg.SearchPaths, searchPaths...)
		if *outDir == "" {
			*outDir = cfg.OutDir
		}
		if *typesFile == "" {
			*typesFile = cfg.TypesFile
		}
		if *execCmd == "" {
			*execCmd = cfg.Exec
		}
	}

	opts := shaderpack.Options{
		SearchPaths:     searchPaths,
		MaxIncludeDepth: *depth,
	}

	if *watch {
		watchLoop(inputPath, opts)
		return
	}

	if !build(inputPath, opts) {
		os.Exit(1)
	}
}

// build runs one parse and writes the outputs. It returns false when the
// parse produced diagnostics or an output could not be written.
func build(inputPath string, opts shaderpack.Options) bool {
	artifact, diags, err := shaderpack.ParseFile(inputPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	if diags.HasErrors() {
		fmt.Fprintln(os.Stderr, diags.FormatAll())
		fmt.Fprintf(os.Stderr, "%s: %d diagnostic(s)\n", inputPath, diags.Len())
		return false
	}

	if *outDir != "" {
		if artifact.Program.Name == "" {
			fmt.Fprintf(os.Stderr, "Error: %s defines no program\n", inputPath)
			return false
		}
		if err := writeProgram(*outDir, artifact.Program); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return false
		}
		slog.Debug("wrote program sources", "program", artifact.Program.Name, "dir", *outDir)
	}

	if *typesFile != "" {
		data, err := json.MarshalIndent(artifact.Types, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding types: %v\n", err)
			return false
		}
		if err := os.WriteFile(*typesFile, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing types: %v\n", err)
			return false
		}
		slog.Debug("wrote type mapping", "file", *typesFile, "entries", len(artifact.Types))
	}

	if *execCmd != "" {
		if err := runHook(*execCmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error running hook: %v\n", err)
			return false
		}
	}

	return true
}

func writeProgram(dir string, program shaderpack.ProgramSource) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	vertPath := filepath.Join(dir, program.Name+".vert")
	if err := os.WriteFile(vertPath, []byte(program.VertexSource+"\n"), 0644); err != nil {
		return err
	}
	fragPath := filepath.Join(dir, program.Name+".frag")
	return os.WriteFile(fragPath, []byte(program.FragmentSource+"\n"), 0644)
}

// runHook splits the hook command shell-style and runs it with inherited
// stdio.
func runHook(command string) error {
	words, err := shellwords.Parse(command)
	if err != nil {
		return fmt.Errorf("parsing hook command: %w", err)
	}
	if len(words) == 0 {
		return nil
	}
	cmd := exec.Command(words[0], words[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// watchLoop rebuilds on every change in the input file's directory. Parse
// diagnostics are logged but never exit the loop.
func watchLoop(inputPath string, opts shaderpack.Options) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	dirs := []string{filepath.Dir(inputPath)}
	dirs = append(dirs, opts.SearchPaths...)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", dir, err)
			os.Exit(1)
		}
		slog.Debug("watching", "dir", dir)
	}

	build(inputPath, opts)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Info("rebuilding", "trigger", event.Name)
			build(inputPath, opts)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watch error", "err", err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderpackc [options] <input.glsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shaderpackc scene.glsl                 Parse and report diagnostics\n")
	fmt.Fprintf(os.Stderr, "  shaderpackc -o out scene.glsl          Write <program>.vert/.frag\n")
	fmt.Fprintf(os.Stderr, "  shaderpackc -I shaders scene.glsl      Add an include search path\n")
	fmt.Fprintf(os.Stderr, "  shaderpackc -watch scene.glsl          Rebuild on file changes\n")
}
