// File: sample.go — the weighted model sampler backend.
package satsolver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nmrassign/methylcsp/cnf"
)

// SamplerPath is the weighted model sampler binary Sample invokes.
var SamplerPath = "wsampler"

// Sample writes f and a per-variable weight file to disk, then asks the
// external weighted sampler for n models. Every variable present in
// costs is weighted distance^(-exponent); every other variable is left
// at the sampler's default weight. Temporary files are created under
// unique, collision-free names and removed before Sample returns,
// regardless of outcome.
func Sample(ctx context.Context, f *cnf.Formula, costs map[int]float64, exponent float64, n int) ([]Model, error) {
	dir := os.TempDir()
	id := uuid.NewString()
	cnfPath := filepath.Join(dir, "methylcsp-"+id+".cnf")
	weightsPath := filepath.Join(dir, "methylcsp-"+id+".weights")
	samplesPath := filepath.Join(dir, "methylcsp-"+id+".samples")

	defer os.Remove(cnfPath)
	defer os.Remove(weightsPath)
	defer os.Remove(samplesPath)

	if err := os.WriteFile(cnfPath, []byte(f.String()), 0o600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(weightsPath, []byte(weightFile(costs, exponent)), 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, SamplerPath,
		"--input", cnfPath,
		"--weights", weightsPath,
		"--samples", strconv.Itoa(n),
		"--output", samplesPath,
	)
	if err := cmd.Run(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(samplesPath)
	if err != nil {
		return nil, err
	}

	models := parseSamples(f, data)
	if len(models) != n {
		return models, ErrSamplerFailed
	}

	return models, nil
}

// weightFile renders the sampler's weight file: one "<var> 1 <weight>"
// line per cost-bearing variable, leaving every other variable at the
// sampler's implicit default weight.
func weightFile(costs map[int]float64, exponent float64) string {
	var buf bytes.Buffer
	for v, distance := range costs {
		weight := math.Pow(distance, -exponent)
		fmt.Fprintf(&buf, "%d 1 %g\n", v, weight)
	}

	return buf.String()
}

// parseSamples reads one model per line, each line a comma-separated
// label and a concatenated 0/1 bitstring whose i-th character (1-indexed)
// gives variable i's truth value.
func parseSamples(f *cnf.Formula, data []byte) []Model {
	var models []Model

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		comma := strings.IndexByte(line, ',')
		if comma < 0 || comma+1 >= len(line) {
			continue
		}
		bits := line[comma+1:]

		literals := make(map[int]bool, len(bits))
		for i, b := range bits {
			v := i + 1
			if b == '1' {
				literals[v] = true
			} else {
				literals[-v] = true
			}
		}

		models = append(models, buildModel(f, literals))
	}

	return models
}
