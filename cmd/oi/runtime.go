package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	rdebug "runtime/debug"
	"time"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-inspect/classify"
	"github.com/signadot/tony-format/go-inspect/inspect"
	"github.com/signadot/tony-format/go-inspect/render"
)

var startTime = time.Now()

// process names the anonymous Process section of runtimeInfo.
type process struct {
	PID    int
	Args   []string
	Start  time.Time
	Uptime string
}

type runtimeInfo struct {
	GoVersion    string
	GOOS         string
	GOARCH       string
	NumCPU       int
	NumGoroutine int
	Process      struct {
		PID    int
		Args   []string
		Start  time.Time
		Uptime string
	}
	Build  *rdebug.BuildInfo
	Memory *runtime.MemStats
}

func readRuntime() *runtimeInfo {
	info := &runtimeInfo{
		GoVersion:    runtime.Version(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		Memory:       &runtime.MemStats{},
	}
	info.Process.PID = os.Getpid()
	info.Process.Args = os.Args
	info.Process.Start = startTime
	info.Process.Uptime = time.Since(startTime).Round(time.Millisecond).String()
	if bi, ok := rdebug.ReadBuildInfo(); ok {
		info.Build = bi
	}
	runtime.ReadMemStats(info.Memory)
	return info
}

func runtimeIntrospector() classify.Introspector {
	return &classify.Reflect{
		Names: classify.NewNamespace().Register("Process", process{}),
	}
}

func runtimeCmd(cfg *RuntimeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Runtime.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewRuntime(cfg, cc.Out, readRuntime())
}

func viewRuntime(cfg *RuntimeConfig, w io.Writer, info *runtimeInfo) error {
	screen := render.NewScreen(cfg.screenOpts(w)...)
	root, err := inspect.Into(info,
		inspect.Named("runtime"),
		inspect.WithView(screen),
		inspect.WithIntrospector(runtimeIntrospector()),
		inspect.In(screen, inspect.InsertBottom))
	if err != nil {
		return fmt.Errorf("error inspecting runtime: %w", err)
	}
	if cfg.P != "" {
		root.NavigatePath(cfg.P, cfg.F, false)
	} else {
		root.Expand()
	}
	if _, err := screen.WriteTo(w); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	return nil
}
