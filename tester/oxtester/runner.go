package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/artemshein/ox"
)

const (
	opAttr     = "attr"
	opCData    = "cdata"
	opClose    = "close"
	opComment  = "comment"
	opDoctype  = "doctype"
	opElement  = "element"
	opInstruct = "instruct"
	opPop      = "pop"
	opRaw      = "raw"
	opText     = "text"
)

var wsStrip = regexp.MustCompile(`[\n\r\t ]+`)

// Script is a flat list of builder calls decoded from XML, one
// <command> element per call.
type Script struct {
	XMLName  xml.Name  `xml:"script"`
	Name     string    `xml:"name,attr"`
	Commands []Command `xml:"command"`
}

// Command is a single builder call. Params picks up whatever
// attributes the named fields don't claim, in document order; element
// and instruct consume them as node attributes, everything else
// rejects them.
type Command struct {
	XMLName xml.Name   `xml:"command"`
	Op      string     `xml:"op,attr"`
	Name    string     `xml:"name,attr"`
	Target  string     `xml:"target,attr"`
	WS      string     `xml:"ws,attr"`
	Content string     `xml:",chardata"`
	Params  []xml.Attr `xml:",any,attr"`
}

// ErrUnknownParam reports a command attribute its op has no use for.
type ErrUnknownParam struct {
	Op   string
	Name string
}

// NewErrUnknownParam makes an unknown param error.
func NewErrUnknownParam(command Command, name string) ErrUnknownParam {
	return ErrUnknownParam{command.Op, name}
}

// Error implements error.
func (e ErrUnknownParam) Error() string {
	return fmt.Sprintf("unknown param %s in command %s", e.Name, e.Op)
}

// CleanContent collapses whitespace runs when the command carries
// ws="strip", so scripts can be formatted freely without changing the
// document they build.
func (c Command) CleanContent() string {
	r := c.Content
	if c.WS == "strip" {
		r = wsStrip.ReplaceAllString(strings.TrimSpace(r), " ")
	}
	return r
}

func (c Command) attrs() []ox.Attr {
	out := make([]ox.Attr, 0, len(c.Params))
	for _, p := range c.Params {
		out = append(out, ox.Attr{Name: p.Name.Local, Value: p.Value})
	}
	return out
}

func (c Command) noParams() error {
	if len(c.Params) > 0 {
		return NewErrUnknownParam(c, c.Params[0].Name.Local)
	}
	return nil
}

// Run executes every command against b and closes it.
func (s *Script) Run(b *ox.Builder) error {
	for _, command := range s.Commands {
		// remove debugging attributes from all commands
		ps := make([]xml.Attr, 0, len(command.Params))
		for _, p := range command.Params {
			if p.Name.Local != "line" && p.Name.Local != "pos" && p.Name.Local != "fn" {
				ps = append(ps, p)
			}
		}
		command.Params = ps

		if err := run(b, command); err != nil {
			return err
		}
	}
	return b.Close()
}

func run(b *ox.Builder, command Command) error {
	switch command.Op {
	case opInstruct:
		target := command.Target
		if target == "" {
			target = "xml"
		}
		return b.Instruct(target, command.attrs()...)

	case opElement:
		return b.Element(command.Name, command.attrs()...)

	case opAttr:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Attr(ox.Attr{Name: command.Name, Value: command.CleanContent()})

	case opText:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Text(command.CleanContent())

	case opComment:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Comment(command.CleanContent())

	case opDoctype:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Doctype(command.CleanContent())

	case opCData:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.CData(command.CleanContent())

	case opRaw:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Raw(command.CleanContent())

	case opPop:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Pop()

	case opClose:
		if err := command.noParams(); err != nil {
			return err
		}
		return b.Close()

	default:
		spew.Fdump(os.Stderr, command)
		return fmt.Errorf("unknown op %q", command.Op)
	}
}
