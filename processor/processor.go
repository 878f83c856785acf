// Package processor walks an input tree and runs the per-file
// parse -> generate -> write -> compile pipeline.
package processor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/compiler"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/config"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter/quakemap"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter/vmf"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/process"
)

const mapExtension = ".map"

// Processor converts every .map file below the configured input folder
// into a .vmf document and optionally compiles each document with the
// resource compiler.
type Processor struct {
	config        *config.Config
	processRunner process.Runner
	compiler      compiler.ResourceCompiler
}

// Summary of one batch run. Every failure is scoped to a single input
// file; the batch always runs to completion.
type Summary struct {
	Found     int
	Converted int
	Compiled  int
	Failed    int
}

// New creates a Processor for one configuration.
func New(conf *config.Config) *Processor {
	return &Processor{
		config:        conf,
		processRunner: process.NewRunner(),
		compiler:      compiler.ResourceCompiler{Path: conf.CompilerPath},
	}
}

// ConvertFolder converts every .map file found below the input folder.
// A missing input folder or an unusable output layout aborts the whole
// batch; any per-file failure is logged, counted and skipped.
func (p *Processor) ConvertFolder() (Summary, error) {
	summary := Summary{}

	if _, err := os.Stat(p.config.InputDir); err != nil {
		return summary, fmt.Errorf("input folder %s: %s", p.config.InputDir, err)
	}
	if p.config.CompilerPath != "" && !p.compiler.IsWorking() {
		return summary, fmt.Errorf("resourcecompiler not found at %s", p.config.CompilerPath)
	}

	if err := p.setupAddonLayout(); err != nil {
		return summary, err
	}

	mapFiles, err := collectMapFiles(p.config.InputDir)
	if err != nil {
		return summary, fmt.Errorf("scan of %s failed: %s", p.config.InputDir, err)
	}
	summary.Found = len(mapFiles)

	if len(mapFiles) == 0 {
		log.Infof("no %s files found in %s, nothing to convert", mapExtension, p.config.InputDir)
		return summary, nil
	}

	log.Infof("found %d map files to convert", len(mapFiles))
	for _, mapPath := range mapFiles {
		converted, compiled, err := p.convertFile(mapPath)
		if converted {
			summary.Converted++
		}
		if compiled {
			summary.Compiled++
		}
		if err != nil {
			log.Errorf("%s: %s", mapPath, err)
			summary.Failed++
		}
	}

	log.Infof("output files are located in %s", p.config.AddonDir())
	return summary, nil
}

// setupAddonLayout creates <output>/<addon>/maps and an empty sibling
// materials folder.
func (p *Processor) setupAddonLayout() error {
	for _, dir := range []string{p.config.AddonDir(), p.config.MapsDir(), p.config.MaterialsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %s", dir, err)
		}
	}
	return nil
}

// collectMapFiles finds every file below root with a case-insensitive
// .map extension.
func collectMapFiles(root string) ([]string, error) {
	mapFiles := []string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), mapExtension) {
			mapFiles = append(mapFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapFiles, nil
}

// convertFile runs the whole pipeline for one input file. A file that
// parses to zero brushes is skipped without error, matching the
// parser's best-effort policy.
func (p *Processor) convertFile(mapPath string) (converted bool, compiled bool, err error) {
	log.Infof("processing %s", mapPath)

	content, err := os.ReadFile(mapPath)
	if err != nil {
		return false, false, fmt.Errorf("read failed: %s", err)
	}

	brushes := nonEmptyBrushes(quakemap.Parse(string(content)))
	log.Debugf("parsed %d brushes from %s", len(brushes), mapPath)
	if len(brushes) == 0 {
		log.Warnf("no brushes found in %s, skipping", mapPath)
		return false, false, nil
	}

	mapName := strings.TrimSuffix(filepath.Base(mapPath), filepath.Ext(mapPath))
	vmfPath := filepath.Join(p.config.MapsDir(), mapName+".vmf")

	document := vmf.Generate(brushes)
	if err := os.WriteFile(vmfPath, []byte(document), 0644); err != nil {
		return false, false, fmt.Errorf("write %s: %s", vmfPath, err)
	}
	log.Infof("generated %s", vmfPath)

	if p.config.CompilerPath == "" {
		return true, false, nil
	}

	if err := p.compile(vmfPath); err != nil {
		return true, false, err
	}
	return true, true, nil
}

// compile runs the resource compiler over one generated document and
// forwards its output to the log.
func (p *Processor) compile(vmfPath string) error {
	log.Infof("compiling %s", vmfPath)
	result := p.processRunner.Run(p.compiler, vmfPath)

	forwardLines(result.StdOut, func(line string) { log.Info(line) })
	forwardLines(result.StdErr, func(line string) { log.Warnf("[compiler] %s", line) })

	if !result.Ok() {
		return fmt.Errorf("compile of %s failed: %s", vmfPath, strings.Join(result.Errors, "; "))
	}
	log.Infof("compiled %s", vmfPath)
	return nil
}

func forwardLines(output string, emit func(string)) {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		emit(line)
	}
}

func nonEmptyBrushes(brushes []converter.Brush) []converter.Brush {
	filtered := brushes[:0]
	for _, brush := range brushes {
		if len(brush.Planes) > 0 {
			filtered = append(filtered, brush)
		}
	}
	return filtered
}
