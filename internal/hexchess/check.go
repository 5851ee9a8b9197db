package hexchess

// IsAttacked 判断格子 c 是否被 by 这一方攻击。
// 从目标格往外找，而不是生成对方全部走法。
func (p *Position) IsAttacked(c Coord, by Color) bool {
	if rayAttacked(p, c, by, orthDirs[:], Rook) || rayAttacked(p, c, by, diagDirs[:], Bishop) {
		return true
	}
	knight := MakePiece(by, Knight)
	for _, j := range knightJumps {
		if p.At(c.Add(j)) == knight {
			return true
		}
	}
	pawn := MakePiece(by, Pawn)
	for _, d := range pawnCaptureDirs(by) {
		s := Coord{Q: c.Q - d.Q, R: c.R - d.R}
		if OnBoard(s) && p.At(s) == pawn {
			return true
		}
	}
	return false
}

// 沿方向找到第一个子：slider 或 后 命中；紧贴的王也算
func rayAttacked(p *Position, c Coord, by Color, dirs []Coord, slider PieceType) bool {
	for _, d := range dirs {
		s := c.Add(d)
		dist := 1
		for OnBoard(s) {
			pc := p.At(s)
			if pc == 0 {
				s = s.Add(d)
				dist++
				continue
			}
			if pc.Color() == by {
				pt := pc.Type()
				if pt == slider || pt == Queen || (pt == King && dist == 1) {
					return true
				}
			}
			break
		}
	}
	return false
}

// InCheck 判断 color 这一方的王是否被将军
func (p *Position) InCheck(color Color) bool {
	king, ok := p.KingSquare(color)
	if !ok {
		return false
	}
	return p.IsAttacked(king, color.Opponent())
}
