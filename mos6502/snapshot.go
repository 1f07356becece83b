package mos6502

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

const currentSnapshotVersion = 1

const infoString = "easy6502 snapshot"

// Snapshot is a read-only copy of the whole machine: registers, run state and
// all 64KB of memory.
type Snapshot struct {
	Registers  Registers
	State      State
	CycleCount uint64
	StepCount  uint64
	Memory     [memSize]byte
}

// Snapshot exports the current machine state. Changing the snapshot has no
// effect on the CPU.
func (cpu *Cpu6502) Snapshot() Snapshot {
	return Snapshot{
		Registers:  cpu.Registers,
		State:      cpu.state,
		CycleCount: cpu.CycleCount,
		StepCount:  cpu.StepCount,
		Memory:     cpu.bus.ram,
	}
}

// Restore replaces the machine state with a snapshot. A faulted snapshot
// restores as halted since the fault itself is not recorded, and so does any
// unknown state.
func (cpu *Cpu6502) Restore(snap Snapshot) {
	cpu.Registers = snap.Registers
	cpu.bus.ram = snap.Memory
	cpu.CycleCount = snap.CycleCount
	cpu.StepCount = snap.StepCount
	cpu.fault = nil

	cpu.state = snap.State
	if cpu.state != Running {
		cpu.state = Halted
	}
}

type snapshotFile struct {
	Version int
	Info    string
	State   Snapshot
}

// Save writes the snapshot as gzipped JSON.
func (snap Snapshot) Save(w io.Writer) error {
	zw := gzip.NewWriter(w)

	err := json.NewEncoder(zw).Encode(snapshotFile{
		Version: currentSnapshotVersion,
		Info:    infoString,
		State:   snap,
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return zw.Close()
}

// LoadSnapshot reads a snapshot written by Save.
func LoadSnapshot(r io.Reader) (Snapshot, error) {
	var file snapshotFile

	zr, err := gzip.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	defer zr.Close()

	if err = json.NewDecoder(zr).Decode(&file); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	} else if file.Info != infoString {
		return Snapshot{}, fmt.Errorf("not an easy6502 snapshot")
	} else if file.Version != currentSnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", file.Version)
	} else if !file.State.State.Valid() {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w: %v", ErrInvalidState, file.State.State)
	}

	return file.State, nil
}
