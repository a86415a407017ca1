package ir

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"
)

// Format renders a module as deterministic text. It is meant for
// debugging, the cli and structural tests, not as a wire format.
func Format(ctx context.Context, b []byte, m *Module) (_ []byte, err error) {
	for _, d := range m.Decls {
		b = formatProto(b, "declare", d)
		b = append(b, '\n')
	}

	for i, f := range m.Funcs {
		if i != 0 || len(m.Decls) != 0 {
			b = append(b, '\n')
		}

		b, err = formatFunc(ctx, b, f)
		if err != nil {
			return nil, errors.Wrap(err, "func %v", f.Name)
		}
	}

	return b, nil
}

func formatProto(b []byte, kind string, p *Prototype) []byte {
	b = hfmt.Appendf(b, "%s %s(", kind, p.Name)

	for i, t := range p.Params {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = hfmt.Appendf(b, "%v", t)
	}

	b = hfmt.Appendf(b, ") %v", p.Ret)

	if p.CallConv != "" {
		b = hfmt.Appendf(b, " %q", p.CallConv)
	}

	return b
}

func formatFunc(ctx context.Context, b []byte, f *Func) (_ []byte, err error) {
	b = hfmt.Appendf(b, "func %s(", f.Name)

	for i, in := range f.In {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = hfmt.Appendf(b, "%v %v", in, in.Type)
	}

	b = hfmt.Appendf(b, ") %v {\n", f.Ret)

	for _, blk := range f.Blocks {
		b, err = formatBlock(ctx, b, blk)
		if err != nil {
			return nil, errors.Wrap(err, "block %v", blk.Label)
		}
	}

	b = append(b, "}\n"...)

	return b, nil
}

func formatBlock(ctx context.Context, b []byte, blk *Block) (_ []byte, err error) {
	b = hfmt.Appendf(b, "%s:\n", blk.Label)

	for _, ins := range blk.Code {
		b, err = formatInstr(ctx, b, ins)
		if err != nil {
			return nil, err
		}
	}

	if blk.Term == nil {
		return nil, errors.New("block without terminator")
	}

	return formatInstr(ctx, b, blk.Term)
}

func formatInstr(ctx context.Context, b []byte, ins Instr) ([]byte, error) {
	switch x := ins.(type) {
	case Alloca:
		b = hfmt.Appendf(b, "\t%v = alloca %v\n", x.Dst, x.Elem)
	case Store:
		b = hfmt.Appendf(b, "\tstore %v, %v\n", x.Val, x.Ptr)
	case Load:
		b = hfmt.Appendf(b, "\t%v = load %v, %v\n", x.Dst, x.Dst.Type, x.Ptr)
	case ConstInt:
		b = hfmt.Appendf(b, "\t%v = const %v %d\n", x.Dst, x.Dst.Type, x.Val)
	case ConstFloat:
		b = hfmt.Appendf(b, "\t%v = const %v %g\n", x.Dst, x.Dst.Type, x.Val)
	case BinOp:
		b = hfmt.Appendf(b, "\t%v = %v %v %v, %v\n", x.Dst, x.Op, x.Dst.Type, x.L, x.R)
	case Cmp:
		b = hfmt.Appendf(b, "\t%v = cmp %v %v, %v\n", x.Dst, x.Pred, x.L, x.R)
	case SIToFP:
		b = hfmt.Appendf(b, "\t%v = sitofp %v to %v\n", x.Dst, x.Src, x.Dst.Type)
	case Call:
		if x.Dst.IsVoid() {
			b = hfmt.Appendf(b, "\tcall %v(", x.Func)
		} else {
			b = hfmt.Appendf(b, "\t%v = call %v(", x.Dst, x.Func)
		}

		for i, a := range x.Args {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = hfmt.Appendf(b, "%v", a)
		}

		b = append(b, ")\n"...)
	case Branch:
		b = hfmt.Appendf(b, "\tbr %v\n", x.Block.Label)
	case BranchIf:
		b = hfmt.Appendf(b, "\tbr %v, %v, %v\n", x.Cond, x.Then.Label, x.Else.Label)
	case Return:
		if x.Val.IsVoid() {
			b = append(b, "\tret\n"...)
		} else {
			b = hfmt.Appendf(b, "\tret %v\n", x.Val)
		}
	default:
		return nil, errors.New("unsupported instruction: %T", x)
	}

	return b, nil
}
