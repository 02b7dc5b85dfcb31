// 指示: PakkanenAnastacia
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/io_model/boxman"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/mpresenter/messages"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/scene/memscene"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/minteractor"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/moutput"
)

// options はCLI引数を保持する。
type options struct {
	inputPath    string
	libraryPath  string
	templateName string
	exportPath   string
	mirror       bool
	verbose      bool
}

// main はボックスマンツリーからのリグ合成を実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	repository := boxman.NewBoxmanRepository()
	root, err := loadRoot(repository, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
	}
	fmt.Fprintf(out, messages.LogLoadSuccess+"\n", root.ObjectName())

	if opts.mirror {
		root.ReverseOrientation()
		fmt.Fprintf(out, messages.LogMirrorApplied+"\n", root.ObjectName())
	}

	if opts.exportPath != "" {
		if err := exportTree(repository, opts.exportPath, root); err != nil {
			return fmt.Errorf("%s: %w", messages.MessageExportFailed, err)
		}
		fmt.Fprintf(out, messages.LogExportSuccess+"\n", opts.exportPath)
	}

	scene := memscene.NewMemScene()
	usecase := minteractor.NewAutoRigUsecase(scene)
	if err := usecase.InsertTree(root); err != nil {
		return fmt.Errorf("%s: %w", messages.MessageRigFailed, err)
	}

	result, err := usecase.AutoRig(minteractor.AutoRigRequest{
		Root:             root,
		ProgressReporter: &progressPrinter{out: out, verbose: opts.verbose},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageRigFailed, err)
	}

	fmt.Fprintf(out, messages.LogRigSuccess+"\n",
		result.ArmatureName, result.BoneCount, result.RiggerCount, result.CommandCount)
	return nil
}

// loadRoot は入力ファイルまたはライブラリからツリーを読み込む。
func loadRoot(repository *boxman.BoxmanRepository, opts options) (*model.BoxmanNode, error) {
	if opts.inputPath != "" {
		return loadTree(repository, opts.inputPath)
	}
	library, err := repository.LoadLibrary(opts.libraryPath)
	if err != nil {
		return nil, err
	}
	return library.Get(opts.templateName)
}

// loadTree は単体ファイルからツリーを読み込む。
func loadTree(reader moutput.ITreeReader, path string) (*model.BoxmanNode, error) {
	if !reader.CanLoad(path) {
		return nil, &boxman.WrongFileExtensionError{Path: path}
	}
	return reader.Load(path)
}

// exportTree は読み込み済みツリーを単体ファイルへ書き出す。
func exportTree(writer moutput.ITreeWriter, path string, root *model.BoxmanNode) error {
	return writer.Save(path, root)
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("MrBoxman", flag.ContinueOnError)
	fs.SetOutput(errOut)

	input := fs.String("input", "", messages.LabelInputPath)
	library := fs.String("library", "", messages.LabelLibraryPath)
	template := fs.String("template", "", messages.LabelTemplateName)
	export := fs.String("export", "", messages.LabelExportPath)
	mirror := fs.Bool("mirror", false, "向きを左右反転してから合成する")
	verbose := fs.Bool("verbose", false, "コマンド単位の進捗を表示する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *input == "" && fs.NArg() > 0 {
		*input = fs.Arg(0)
	}
	if *input == "" && *library == "" {
		return options{}, fmt.Errorf("%s", messages.MessageInputRequired)
	}
	if *input == "" && *template == "" {
		return options{}, fmt.Errorf("%s", messages.MessageTemplateMissing)
	}

	return options{
		inputPath:    *input,
		libraryPath:  *library,
		templateName: *template,
		exportPath:   *export,
		mirror:       *mirror,
		verbose:      *verbose,
	}, nil
}

// progressPrinter はリグ合成進捗を標準出力へ書き出す。
type progressPrinter struct {
	out     io.Writer
	verbose bool
}

func (p *progressPrinter) ReportAutoRigProgress(event minteractor.AutoRigProgressEvent) {
	if event.Total > 0 {
		if p.verbose {
			fmt.Fprintf(p.out, messages.LogProgress+"\n", event.Phase, event.Detail, event.Index, event.Total)
		}
		return
	}
	fmt.Fprintf(p.out, messages.LogPhase+"\n", event.Phase, event.Detail)
}
