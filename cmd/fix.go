package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/clin/internal/fixer"
	tt "github.com/gnolang/clin/internal/types"
)

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically remove redundant parentheses from if conditions",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		runAutoFix(logger, args, dryRun)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show fixes as a diff without applying them")
}

func runAutoFix(logger *zap.Logger, paths []string, dryRun bool) {
	fix := fixer.New(dryRun)

	var allCorrections []tt.Correction
	for _, path := range paths {
		files, err := collectSourceFiles(path)
		if err != nil {
			logger.Error("error collecting files", zap.String("path", path), zap.Error(err))
			continue
		}

		for _, file := range files {
			corrections, err := fix.FixFile(file)
			if err != nil {
				logger.Error("error fixing file", zap.String("file", file), zap.Error(err))
				continue
			}
			allCorrections = append(allCorrections, corrections...)
		}
	}

	for _, c := range allCorrections {
		fmt.Printf("%s:%d:%d: fixed %s\n", c.Filename, c.Position.Line, c.Position.Column, c.Rule)
	}
}

func collectSourceFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && filepath.Ext(filePath) == ".swift" {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	return files, nil
}
