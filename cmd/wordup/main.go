package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wordup/internal/export"
	"wordup/internal/extract"
	"wordup/internal/pipeline"
	"wordup/internal/store"
	"wordup/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func promptString(r *bufio.Reader, label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptYesNo(r *bufio.Reader, label string, def bool) bool {
	defStr := "y"
	if !def {
		defStr = "n"
	}
	fmt.Printf("%s (y/n) [%s]: ", label, defStr)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return def
	}
	return line == "y" || line == "yes"
}

func promptInt(r *bufio.Reader, label string, def int) int {
	for {
		fmt.Printf("%s [%d]: ", label, def)
		line, _ := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < 0 {
			fmt.Println("Please enter a non-negative integer.")
			continue
		}
		return v
	}
}

// gatherInputFiles resolves path to a list of files to mine. Directories
// are walked for .html, .htm and .txt files.
func gatherInputFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".html", ".htm", ".txt":
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

// uniqueProjectDir returns baseDir, or baseDir_2, baseDir_3 ... if taken.
func uniqueProjectDir(baseDir string) string {
	dir := baseDir
	for i := 2; ; i++ {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return dir
		}
		dir = fmt.Sprintf("%s_%d", baseDir, i)
	}
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	reader := bufio.NewReader(os.Stdin)

	company := promptString(reader, "Company name", "example")
	domain := promptString(reader, "Domain", "example.com")
	inputPath := promptString(reader, "Input file or directory", ".")

	minLen := promptInt(reader, "Minimum word length", 3)
	maxLen := promptInt(reader, "Maximum word length", 50)
	if maxLen < minLen {
		fmt.Printf("Max length < min length, adjusting max=%d\n", minLen)
		maxLen = minLen
	}
	groupSize := promptInt(reader, "Word group size", 3)
	iterations := promptInt(reader, "Refinement iterations", 1)
	multiplier := promptInt(reader, "Markov expansion multiplier", 50)

	encrypt := promptYesNo(reader, "Bundle output into an encrypted zip?", false)
	var zipPassword string
	if encrypt {
		zipPassword = promptString(reader, "Zip password", "")
		if zipPassword == "" {
			fmt.Println("Empty password, skipping encryption.")
			encrypt = false
		}
	}

	files, err := gatherInputFiles(inputPath)
	if err != nil {
		log.Fatalf("failed to resolve input path: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .html, .htm or .txt files under %s", inputPath)
	}

	extractor, err := extract.New(minLen, maxLen, groupSize)
	if err != nil {
		log.Fatalf("failed to init extractor: %v", err)
	}
	results := extractor.ExtractFiles(files)
	if len(results.Words) == 0 {
		log.Fatalf("no words extracted from %d file(s)", len(files))
	}
	log.WithFields(logrus.Fields{
		"files":  len(files),
		"words":  len(results.Words),
		"emails": len(results.Emails),
	}).Info("extraction complete")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run, err := pipeline.NewRunner(pipeline.Config{
		CompanyName:      company,
		Domain:           domain,
		MinWordLength:    minLen,
		MaxWordLength:    maxLen,
		GroupSize:        groupSize,
		RefineIterations: iterations,
		MarkovMultiplier: multiplier,
		Logger:           log,
	})
	if err != nil {
		log.Fatalf("failed to init pipeline: %v", err)
	}

	model := tui.NewModel(tui.Config{
		StatsCh:  run.StatsCh(),
		ResultCh: run.ResultCh(),
		Stop:     cancel,
	})

	metadata := append(results.Metadata, results.Emails...)
	metadata = append(metadata, results.WordGroups...)

	go func() {
		if _, err := run.Run(ctx, results.Words, metadata); err != nil && ctx.Err() == nil {
			log.Errorf("pipeline error: %v", err)
			cancel()
		}
	}()

	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}

	res := run.GetResult()
	if res == nil {
		fmt.Println("\nSynthesis cancelled before completion.")
		return
	}

	projectDir := uniqueProjectDir("wordup_" + strings.ToLower(strings.ReplaceAll(company, " ", "_")))
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		log.Fatalf("failed to create project dir: %v", err)
	}

	stamp := time.Now().Format("20060102_150405")
	prefix := filepath.Join(projectDir, fmt.Sprintf("%s_%s", strings.ToLower(strings.ReplaceAll(company, " ", "_")), stamp))

	outputs := map[string][]string{
		prefix + "_raw.txt":           res.RawWords,
		prefix + "_comprehensive.txt": res.Comprehensive.Sorted(),
		prefix + "_markov.txt":        res.MarkovWords,
		prefix + "_final.txt":         res.Final.Sorted(),
		prefix + "_masks.txt":         res.Masks,
		prefix + "_rules.txt":         res.Rules,
	}
	written := make([]string, 0, len(outputs)+1)
	for path, lines := range outputs {
		if err := export.WriteLines(path, lines); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		written = append(written, path)
	}
	analysisPath := prefix + "_analysis.txt"
	if err := export.WriteAnalysis(analysisPath, res.Analysis); err != nil {
		log.Fatalf("failed to write analysis: %v", err)
	}
	written = append(written, analysisPath)

	db, err := store.Open(filepath.Join(projectDir, "wordup.db"))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	runID, err := db.SaveRun(&store.Run{
		CompanyName:        company,
		Domain:             domain,
		RawWords:           len(res.RawWords),
		ComprehensiveWords: res.Comprehensive.Len(),
		FinalWords:         res.Final.Len(),
		MarkovWords:        len(res.MarkovWords),
		RulesGenerated:     len(res.Rules),
		MasksGenerated:     len(res.Masks),
	}, res.Analysis)
	if err != nil {
		log.Fatalf("failed to save run: %v", err)
	}
	log.WithField("run_id", runID).Info("run saved")

	if encrypt {
		archive := prefix + "_bundle.zip"
		if err := export.WriteEncryptedZip(archive, zipPassword, written); err != nil {
			log.Fatalf("failed to write encrypted bundle: %v", err)
		}
		fmt.Printf("\nEncrypted bundle: %s\n", archive)
	}

	fmt.Printf("\nGenerated %d final words, %d masks, %d rules in %s\n",
		res.Final.Len(), len(res.Masks), len(res.Rules), projectDir)
}
