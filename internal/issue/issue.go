// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

const (
	EnvFileNotFoundId Id = iota + 1
	EnvFileUnreadableId
	CommandNotFoundId
	CommandStartFailedId
	ConfigLoadFailedId
	InvalidRuntimeModeId
	PermissionDeniedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

// Render renders the issue page with the given glamour style
// ("auto", "dark", "light", "notty", or a path to a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	envFileNotFoundIssue = &Issue{
		id: EnvFileNotFoundId,
		mdMsg: `
# Env file not found!

The env file you passed does not exist.

## Things you can try:
- Check the path for typos; relative paths are resolved from the current directory
- List what enver would read from a file:
~~~
$ enver list ./.env
~~~`,
	}

	envFileUnreadableIssue = &Issue{
		id: EnvFileUnreadableId,
		mdMsg: `
# Env file could not be read!

The env file exists but enver could not read it as text.

## Common causes:
- The path points to a directory
- The file is binary or not UTF-8 encoded

## Expected format:
~~~
DATABASE_URL=postgres
LOG_LEVEL=debug
~~~

Lines that are not a single NAME=VALUE assignment are ignored.`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command you asked enver to run could not be found.

## Things you can try:
- Check the command name for typos
- Make sure the command is on your PATH:
~~~
$ command -v <name>
~~~

- Pass an absolute path to the executable`,
	}

	commandStartFailedIssue = &Issue{
		id: CommandStartFailedId,
		mdMsg: `
# Command failed to start!

The command was found but the operating system refused to start it.

## Things you can try:
- Check that the file is executable:
~~~
$ chmod +x ./script.sh
~~~

- Check the script's shebang line points to an installed interpreter`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

enver could not load your configuration file. Defaults are used instead.

## Things you can try:
- Check the file for CUE syntax errors
- Print the default configuration:
~~~
$ enver config dump
~~~

- Recreate it with:
~~~
$ enver config init
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidRuntimeModeIssue = &Issue{
		id: InvalidRuntimeModeId,
		mdMsg: `
# Invalid runtime mode!

## Available runtimes:
- **native**: spawns the command directly as a child process
- **virtual**: runs the command through the built-in POSIX shell interpreter

~~~
$ enver run --runtime virtual .env printenv
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to read the env file or run the command.

## Things you can try:
- Check file permissions:
~~~
$ ls -l <path>
~~~

- Run enver from a directory you own`,
	}

	issues = map[Id]*Issue{
		envFileNotFoundIssue.id:    envFileNotFoundIssue,
		envFileUnreadableIssue.id:  envFileUnreadableIssue,
		commandNotFoundIssue.id:    commandNotFoundIssue,
		commandStartFailedIssue.id: commandStartFailedIssue,
		configLoadFailedIssue.id:   configLoadFailedIssue,
		invalidRuntimeModeIssue.id: invalidRuntimeModeIssue,
		permissionDeniedIssue.id:   permissionDeniedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
