// Package scanner walks storage roots, classifies directories, and
// assembles one catalog row per show. The walk is sequential and
// deterministic: roots in argument order, children lexicographically.
// Failures are contained per folder; a bad directory yields a stub row
// and the walk continues with its siblings.
package scanner
