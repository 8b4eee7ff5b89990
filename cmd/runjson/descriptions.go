package main

const descriptionRunjson = `runjson executes a helper program and interprets its standard output as a JSON document.

The command is given as a single, shell-style quoted string. It is run to completion exactly once; its parsed
output is pretty-printed to stdout. A payload can be delivered to the command's standard input with --input or
--input-file.

An empty command, or a command that produces no output, prints nothing and exits 0. A command that exits with a
non-zero status propagates that status as runjson's own exit code.`
