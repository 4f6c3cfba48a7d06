// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package proc finds and stops the Java processes (servers, explorers)
// and designers running out of a version directory.
//
// Processes are read from procfs: /proc/<pid>/comm for the name,
// /proc/<pid>/cmdline for arguments, the /proc/<pid>/cwd link for the
// working directory, and the starttime field of /proc/<pid>/stat with
// btime from /proc/stat for the start time. Processes that vanish or
// deny access while being read are skipped.
package proc
