package supervisor

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// memInfoPath is the kernel's memory-statistics pseudo-file. No example
// in the retrieval pack imports a memory-stats library (e.g. gopsutil),
// so this reads the kernel interface directly — the same interface such
// a library would itself poll.
const memInfoPath = "/proc/meminfo"

// memoryPercentFunc is the supervisor's memory-check hook. Tests
// substitute it to exercise the memory-ceiling breach path without
// depending on the host's actual memory pressure.
var memoryPercentFunc = usedMemoryPercent

// usedMemoryPercent returns the fraction of total system memory currently
// in use, as a percentage, derived from MemTotal and MemAvailable in
// /proc/meminfo.
func usedMemoryPercent() (float64, error) {
	f, err := os.Open(memInfoPath)
	if err != nil {
		return 0, fmt.Errorf("supervisor: reading %s: %w", memInfoPath, err)
	}
	defer f.Close()

	var total, available float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			total = parseMemInfoKB(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			available = parseMemInfoKB(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("supervisor: scanning %s: %w", memInfoPath, err)
	}
	if total <= 0 {
		return 0, fmt.Errorf("supervisor: %s has no MemTotal entry", memInfoPath)
	}

	used := total - available

	return used / total * 100, nil
}

// parseMemInfoKB parses a "Label: 123456 kB" line into its numeric value.
// Malformed lines parse as zero rather than erroring, since a single
// missing field should not abort the memory check.
func parseMemInfoKB(line string) float64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0
	}

	return v
}
