package hexchess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var letterToPieceType = map[rune]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	var base rune
	for k, v := range letterToPieceType {
		if v == p.Type() {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Color() == White {
		return unicode.ToUpper(base)
	}
	return base
}

// Encode 简单 FEN-like：11 行（r 从 -5 到 5）用“/”隔开，空格用数字压缩；
// 后面依次是走子方 w/b、过路兵格 "q,r" 或 "-"、半回合计数。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := -Radius; r <= Radius; r++ {
		if r > -Radius {
			sb.WriteByte('/')
		}
		minQ, maxQ := rowBounds(r)
		empty := 0
		for q := minQ; q <= maxQ; q++ {
			pc := p.At(Coord{Q: q, R: r})
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if p.HasEnPassant {
		fmt.Fprintf(&sb, "%d,%d", p.EnPassant.Q, p.EnPassant.R)
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Halfmove))
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition 解析 Encode 的输出；过路兵和半回合字段可以省略
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != 2*Radius+1 {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidFEN, 2*Radius+1, len(rows))
	}
	pos := &Position{}
	for i, row := range rows {
		r := i - Radius
		minQ, maxQ := rowBounds(r)
		q := minQ
		num := 0
		flush := func() {
			q += num
			num = 0
		}
		for _, ch := range row {
			if ch >= '0' && ch <= '9' {
				num = num*10 + int(ch-'0')
				continue
			}
			flush()
			if q > maxQ {
				return nil, fmt.Errorf("%w: row %d overflows", ErrInvalidFEN, r)
			}
			if ch != '.' {
				pt, ok := letterToPieceType[unicode.ToLower(ch)]
				if !ok {
					return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
				}
				color := Black
				if unicode.IsUpper(ch) {
					color = White
				}
				pos.Set(Coord{Q: q, R: r}, MakePiece(color, pt))
			}
			q++
		}
		flush()
		if q != maxQ+1 {
			return nil, fmt.Errorf("%w: row %d has wrong length", ErrInvalidFEN, r)
		}
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side %q", ErrInvalidFEN, parts[1])
	}

	if len(parts) > 2 && parts[2] != "-" {
		var c Coord
		if _, err := fmt.Sscanf(parts[2], "%d,%d", &c.Q, &c.R); err != nil || !OnBoard(c) {
			return nil, fmt.Errorf("%w: bad en passant %q", ErrInvalidFEN, parts[2])
		}
		pos.EnPassant = c
		pos.HasEnPassant = true
	}
	if len(parts) > 3 {
		n, err := strconv.Atoi(parts[3])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad halfmove %q", ErrInvalidFEN, parts[3])
		}
		pos.Halfmove = n
	}
	return pos, nil
}
