// Package platform provides the small set of filesystem operations the
// generator performs: existence checks, writing rendered files with their
// parent directories, and creating empty placeholder files without ever
// truncating an existing one.
package platform
