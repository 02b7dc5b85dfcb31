// 指示: PakkanenAnastacia
package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/io_model/boxman"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

func TestParseOptionsWithFlags(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"-input", "figure.bxmo", "-mirror", "-verbose"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "figure.bxmo" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
	if !opts.mirror || !opts.verbose {
		t.Fatalf("flags mismatch: mirror=%v verbose=%v", opts.mirror, opts.verbose)
	}
}

func TestParseOptionsWithPositional(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions([]string{"figure.bxmo"}, errBuf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.inputPath != "figure.bxmo" {
		t.Fatalf("inputPath mismatch: %s", opts.inputPath)
	}
}

func TestParseOptionsRequireInput(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	if _, err := parseOptions(nil, errBuf); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseOptionsRequireTemplateWithLibrary(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	if _, err := parseOptions([]string{"-library", "figures.bxml"}, errBuf); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunRejectsUnknownExtension(t *testing.T) {
	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	err := run([]string{"-input", "figure.txt"}, outBuf, errBuf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "figure.txt") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunRigsTreeFromFile(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "figure.bxmo")
	saveTestTree(t, inPath)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-input", inPath}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	output := outBuf.String()
	if !strings.Contains(output, "bxm.C.figure") {
		t.Fatalf("load log missing: %s", output)
	}
	if !strings.Contains(output, "armature=") {
		t.Fatalf("summary missing: %s", output)
	}
}

func TestRunRigsTreeFromLibrary(t *testing.T) {
	tempDir := t.TempDir()
	objectPath := filepath.Join(tempDir, "figure.bxmo")
	libraryPath := filepath.Join(tempDir, "figures.bxml")
	saveTestTree(t, objectPath)

	repository := boxman.NewBoxmanRepository()
	root, err := repository.Load(objectPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	library := boxman.NewTemplateLibrary("figures")
	if err := library.Put("figure", root, "テスト用"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := repository.SaveLibrary(libraryPath, library); err != nil {
		t.Fatalf("save library failed: %v", err)
	}

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	args := []string{"-library", libraryPath, "-template", "figure", "-verbose"}
	if err := run(args, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(outBuf.String(), "armature=") {
		t.Fatalf("summary missing: %s", outBuf.String())
	}
}

func TestRunMirrorsTree(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "figure.bxmo")
	saveTestTree(t, inPath)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-input", inPath, "-mirror"}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	output := outBuf.String()
	if !strings.Contains(output, "bxm.R.anchor") && !strings.Contains(output, "反転") {
		t.Fatalf("mirror log missing: %s", output)
	}
}

// saveTestTree はリグ合成可能な最小ツリーを保存する。
func TestRunExportsMirroredTree(t *testing.T) {
	tempDir := t.TempDir()
	inPath := filepath.Join(tempDir, "figure.bxmo")
	exportPath := filepath.Join(tempDir, "figure.json")
	saveTestTree(t, inPath)

	outBuf := bytes.NewBuffer(nil)
	errBuf := bytes.NewBuffer(nil)
	if err := run([]string{"-input", inPath, "-mirror", "-export", exportPath}, outBuf, errBuf); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(outBuf.String(), exportPath) {
		t.Fatalf("export log missing: %s", outBuf.String())
	}

	exported, err := boxman.NewBoxmanRepository().Load(exportPath)
	if err != nil {
		t.Fatalf("exported tree load failed: %v", err)
	}
	if len(exported.Children) != 1 || exported.Children[0].Properties.Orientation != model.OrientationRight {
		t.Fatalf("exported tree should be mirrored: %+v", exported.Children[0].Properties)
	}
}

func saveTestTree(t *testing.T, path string) {
	t.Helper()
	root := &model.BoxmanNode{
		Location: mmath.NewVec3(0, 0, 0),
		Scale:    mmath.NewVec3(1, 1, 1),
		Vertices: cubeVertices(0.5),
		Properties: model.BoxmanProperties{
			Name:        "figure",
			Orientation: model.OrientationCenter,
			JointType:   model.JointTypeObjectRoot,
		},
		Children: []*model.BoxmanNode{
			{
				Location: mmath.NewVec3(1, 0, 0),
				Scale:    mmath.NewVec3(1, 1, 1),
				Vertices: cubeVertices(0.25),
				Properties: model.BoxmanProperties{
					Name:        "anchor",
					Orientation: model.OrientationLeft,
					JointType:   model.JointTypeAccessory,
				},
			},
		},
	}
	if err := boxman.NewBoxmanRepository().Save(path, root); err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

// cubeVertices は一辺 2*half の立方体頂点を返す。
func cubeVertices(half float64) []mmath.Vec3 {
	var ret []mmath.Vec3
	for _, x := range []float64{-half, half} {
		for _, y := range []float64{-half, half} {
			for _, z := range []float64{-half, half} {
				ret = append(ret, mmath.NewVec3(x, y, z))
			}
		}
	}
	return ret
}
