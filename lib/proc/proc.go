// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package proc

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultRoot is where procfs is mounted.
const DefaultRoot = "/proc"

// clockTicks is USER_HZ, the unit of the stat starttime field. It is
// 100 on every Linux architecture jump runs on.
const clockTicks = 100

// Process is a snapshot of one running process.
type Process struct {
	PID     int
	Name    string
	Cmdline []string
	Cwd     string
	Started time.Time
}

// Table reads processes from a procfs mount.
type Table struct {
	// Root defaults to DefaultRoot.
	Root string
}

func (t Table) root() string {
	if t.Root == "" {
		return DefaultRoot
	}
	return t.Root
}

// List returns every readable process, ordered by PID.
func (t Table) List() ([]Process, error) {
	entries, err := os.ReadDir(t.root())
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	bootTime, err := t.bootTime()
	if err != nil {
		return nil, err
	}

	var processes []Process
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}
		process, ok := t.read(pid, bootTime)
		if ok {
			processes = append(processes, process)
		}
	}
	slices.SortFunc(processes, func(a, b Process) int { return a.PID - b.PID })
	return processes, nil
}

func (t Table) read(pid int, bootTime time.Time) (Process, bool) {
	dir := filepath.Join(t.root(), strconv.Itoa(pid))

	comm, err := os.ReadFile(filepath.Join(dir, "comm"))
	if err != nil {
		return Process{}, false
	}
	process := Process{PID: pid, Name: strings.TrimSpace(string(comm))}

	if cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
		for _, arg := range strings.Split(string(cmdline), "\x00") {
			if arg != "" {
				process.Cmdline = append(process.Cmdline, arg)
			}
		}
	}
	if cwd, err := os.Readlink(filepath.Join(dir, "cwd")); err == nil {
		process.Cwd = cwd
	}
	if stat, err := os.ReadFile(filepath.Join(dir, "stat")); err == nil {
		if ticks, ok := startTicks(string(stat)); ok {
			process.Started = bootTime.Add(time.Duration(ticks) * time.Second / clockTicks)
		}
	}
	return process, true
}

// startTicks extracts field 22 (starttime) of a stat line. The comm
// field in parentheses may contain spaces, so fields are counted from
// the last ')'.
func startTicks(stat string) (uint64, bool) {
	closing := strings.LastIndexByte(stat, ')')
	if closing < 0 {
		return 0, false
	}
	// After ")" come fields 3 onward; starttime is field 22.
	fields := strings.Fields(stat[closing+1:])
	const startTimeIndex = 22 - 3
	if len(fields) <= startTimeIndex {
		return 0, false
	}
	ticks, err := strconv.ParseUint(fields[startTimeIndex], 10, 64)
	return ticks, err == nil
}

func (t Table) bootTime() (time.Time, error) {
	file, err := os.Open(filepath.Join(t.root(), "stat"))
	if err != nil {
		return time.Time{}, fmt.Errorf("reading boot time: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "btime" {
			seconds, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return time.Time{}, fmt.Errorf("parsing btime %q: %w", fields[1], err)
			}
			return time.Unix(seconds, 0), nil
		}
	}
	return time.Time{}, fmt.Errorf("no btime line in %s", filepath.Join(t.root(), "stat"))
}
