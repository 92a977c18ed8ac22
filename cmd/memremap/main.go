// Command memremap runs a small demo simulation that places an address
// remapper between a traffic generator and an ideal memory controller, so
// that the remapping behavior can be observed with tracing and monitoring
// turned on.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/memremap/datarecording"
	"github.com/sarchlab/memremap/mem"
	"github.com/sarchlab/memremap/mem/addrmapper"
	"github.com/sarchlab/memremap/mem/idealmemcontroller"
	"github.com/sarchlab/memremap/mem/trace"
	"github.com/sarchlab/memremap/monitoring"
	"github.com/sarchlab/memremap/sim"
)

var (
	policyName    string
	traceFileName string
	traceStdout   bool
	monitorPort   int
	openDashboard bool
	numAccesses   int
)

var rootCmd = &cobra.Command{
	Use:   "memremap",
	Short: "Demo of the address-remapping memory adapter",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDemo()
	},
}

func init() {
	rootCmd.Flags().StringVar(&policyName, "policy", "range",
		"remapping policy to use, one of [range, matrix]")
	rootCmd.Flags().StringVar(&traceFileName, "trace-db", "",
		"record remapped accesses into an SQLite database at the given path")
	rootCmd.Flags().BoolVar(&traceStdout, "trace", false,
		"print remapped accesses to stderr")
	rootCmd.Flags().IntVar(&monitorPort, "monitor-port", 0,
		"start the monitoring server on the given port, 0 disables it")
	rootCmd.Flags().BoolVar(&openDashboard, "open-dashboard", false,
		"open the monitoring address in the local browser")
	rootCmd.Flags().IntVar(&numAccesses, "num-accesses", 16,
		"number of timing accesses the demo issues")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func runDemo() error {
	engine := sim.NewSerialEngine()

	memCtrl := idealmemcontroller.MakeBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithLatency(100).
		WithNewStorage(64 * mem.MB).
		Build("MemCtrl")

	mapper := addrmapper.MakeBuilder().
		WithPolicy(buildPolicy()).
		Build("Remapper")

	driver := newDriver(engine)

	mem.Connect(mapper.MemSidePort(), memCtrl.TopPort())
	mem.Connect(driver.memPort, mapper.CPUSidePort())
	mapper.Init()

	attachTracers(engine, mapper)
	startMonitor(engine, mapper, memCtrl)

	driver.start()

	if err := engine.Run(); err != nil {
		return err
	}

	fmt.Printf("Simulation finished at %.9f s, %d responses received\n",
		float64(engine.CurrentTime()), driver.responsesReceived)

	return nil
}

func buildPolicy() addrmapper.MappingPolicy {
	switch policyName {
	case "range":
		return addrmapper.NewRangeMapping(
			[]mem.AddrRange{mem.RangeSize(0x1000, 0x1000)},
			[]mem.AddrRange{mem.RangeSize(0x9000, 0x1000)},
		)
	case "matrix":
		// Swaps address bits 12 and 13 and leaves the rest alone.
		rows := identityRows(26)
		rows[12], rows[13] = rows[13], rows[12]

		return addrmapper.NewBitMatrixMapping(26, rows)
	default:
		log.Panicf("unknown policy %q", policyName)
		return nil
	}
}

func identityRows(n int) []uint64 {
	rows := make([]uint64, n)
	for i := range rows {
		rows[i] = 1 << i
	}

	return rows
}

func attachTracers(engine sim.Engine, mapper *addrmapper.Comp) {
	if traceStdout {
		logger := log.New(os.Stderr, "", 0)
		tracer := trace.NewLogTracer(logger, engine)
		mapper.AcceptHook(tracer)
	}

	if traceFileName != "" {
		recorder := datarecording.New(traceFileName)
		tracer := trace.NewDBTracer(recorder, engine)
		mapper.AcceptHook(tracer)
	}
}

func startMonitor(
	engine sim.Engine,
	mapper *addrmapper.Comp,
	memCtrl *idealmemcontroller.Comp,
) {
	if monitorPort == 0 {
		return
	}

	monitor := monitoring.NewMonitor().WithPortNumber(monitorPort)
	monitor.RegisterEngine(engine)
	monitor.RegisterComponent(mapper)
	monitor.RegisterComponent(memCtrl)

	addr := monitor.StartServer()
	if openDashboard {
		monitor.OpenDashboard(addr)
	}
}
