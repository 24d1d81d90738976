// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cloudscale/cloudscale/internal/meta"
)

const bashCompletionScript = `# bash completion for cloudscale
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_cloudscale()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "browse diff export pq publish render scq serve tq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attrs -a --color -c --filter -f --output -o --padding --schema --sort -s --titles -t --tldr"

    case "$cmd" in
        pq|scq|tq)
            local opts="$common"
            ;;
        render)
            local opts="--format -F --out -O --inline --script-src --tailwind --title --width -W --tldr"
            ;;
        serve)
            local opts="--addr --shutdown --tailwind --title --tldr"
            ;;
        browse)
            local opts="--breakpoint --scroll-steps --scroll-interval --tldr"
            ;;
        publish)
            local opts="--bucket -b --prefix --profile --region --endpoint --cache-control --dry-run --tailwind --title --tldr"
            ;;
        export)
            local opts="--format -F --out -O"
            ;;
        diff)
            local opts="--ignore --color -c --exit-code"
            if [[ "$cur" != -* ]]; then
                COMPREPLY=( $(compgen -f -- "$cur") )
                return 0
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --format|-F)
            if [[ "$cmd" == "export" ]]; then
                COMPREPLY=( $(compgen -W "json yaml" -- "$cur") )
            else
                COMPREPLY=( $(compgen -W "html text" -- "$cur") )
            fi
            return 0
            ;;
        --out|-O)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _cloudscale cloudscale
`

const zshCompletionScript = `#compdef cloudscale

_cloudscale() {
  local -a cmds
  cmds=(
    'browse:browse the comparison page in the terminal'
    'diff:compare a catalog snapshot with the built-in catalog'
    'export:export the catalog snapshot'
    'pq:provider query'
    'publish:upload the page to an S3 website bucket'
    'render:render the comparison page'
    'scq:scenario recommendation query'
    'serve:serve the comparison page over HTTP'
    'tq:storage tier query'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[spaces between columns]:padding'
  '--schema[dump schema]'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cloudscale commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    pq|scq|tq)
      _arguments -C $common
      ;;
    render)
      _arguments -C \
        '(-F --format)'{-F,--format}'[render target]:format:(html text)' \
        '(-O --out)'{-O,--out}'[output file]:file:_files' \
        '--inline[embed the navigation script]' \
        '--script-src[navigation script URL]:url' \
        '--tailwind[Tailwind script URL]:url' \
        '--title[document title]:title' \
        '(-W --width)'{-W,--width}'[text width]:width'
      ;;
    serve)
      _arguments -C \
        '--addr[listen address]:addr' \
        '--shutdown[graceful shutdown timeout]:duration' \
        '--tailwind[Tailwind script URL]:url' \
        '--title[document title]:title'
      ;;
    browse)
      _arguments -C \
        '--breakpoint[menu collapse width]:columns' \
        '--scroll-steps[frames per smooth scroll]:steps' \
        '--scroll-interval[delay between frames]:duration'
      ;;
    publish)
      _arguments -C \
        '(-b --bucket)'{-b,--bucket}'[destination bucket]:bucket' \
        '--prefix[key prefix]:prefix' \
        '--profile[AWS profile]:profile' \
        '--region[AWS region]:region' \
        '--endpoint[S3 endpoint URL]:url' \
        '--cache-control[Cache-Control header]:value' \
        '--dry-run[list uploads only]'
      ;;
    export)
      _arguments -C \
        '(-F --format)'{-F,--format}'[encoding]:format:(json yaml)' \
        '(-O --out)'{-O,--out}'[output file]:file:_files'
      ;;
    diff)
      _arguments -C \
        '--ignore[top level keys to skip]:keys' \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '--exit-code[fail when the snapshots differ]' \
        '*:snapshot:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _cloudscale cloudscale
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := stdout(cmd)
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: cloudscale completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cloudscale completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
