// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jenkins checks the last CI build of a version before it is
// updated.
//
// A project configures a job URL template such as
//
//	http://ci/job/assemble_tx/branch={version}/lastBuild/api/json?tree=result,timestamp,url
//
// in which {version} and any {NAME} from the project's vars are
// substituted. The endpoint answers with a JSON build record; a null
// result means the build is still running.
package jenkins
