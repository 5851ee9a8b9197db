package hexchess

// 六个正方向（边相邻）
var orthDirs = [6]Coord{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}

// 六个斜方向（角相邻）
var diagDirs = [6]Coord{{1, -2}, {2, -1}, {1, 1}, {-1, 2}, {-2, 1}, {-1, -1}}

// 马：距离为 3 且不在正方向直线上的 12 个格子
var knightJumps = [12]Coord{
	{1, -3}, {2, -3}, {3, -2}, {3, -1}, {2, 1}, {1, 2},
	{-1, 3}, {-2, 3}, {-3, 2}, {-3, 1}, {-2, -1}, {-1, -2},
}

func genSliderTargets(p *Position, from Coord, side Color, dirs []Coord, out []Coord) []Coord {
	for _, d := range dirs {
		c := from.Add(d)
		for OnBoard(c) {
			pc := p.At(c)
			if pc == 0 {
				out = append(out, c)
			} else {
				if pc.Color() != side {
					out = append(out, c)
				}
				break
			}
			c = c.Add(d)
		}
	}
	return out
}

func genStepTargets(p *Position, from Coord, side Color, steps []Coord, out []Coord) []Coord {
	for _, d := range steps {
		c := from.Add(d)
		if !OnBoard(c) {
			continue
		}
		pc := p.At(c)
		if pc == 0 || pc.Color() != side {
			out = append(out, c)
		}
	}
	return out
}

func genPawnTargets(p *Position, from Coord, side Color, out []Coord) []Coord {
	fwd := pawnForward(side)
	one := from.Add(fwd)
	if OnBoard(one) && p.At(one) == 0 {
		out = append(out, one)
		two := one.Add(fwd)
		if IsStartSquare(from, side) && OnBoard(two) && p.At(two) == 0 {
			out = append(out, two)
		}
	}
	for _, d := range pawnCaptureDirs(side) {
		c := from.Add(d)
		if !OnBoard(c) {
			continue
		}
		pc := p.At(c)
		if pc != 0 {
			if pc.Color() != side {
				out = append(out, c)
			}
			continue
		}
		// 过路兵只有轮到走棋的一方能吃
		if p.HasEnPassant && c == p.EnPassant && side == p.SideToMove {
			out = append(out, c)
		}
	}
	return out
}

// PseudoTargets 伪合法目标格（不考虑自己王被将军）
func (p *Position) PseudoTargets(from Coord) []Coord {
	pc := p.At(from)
	if pc == 0 {
		return nil
	}
	side := pc.Color()
	var out []Coord
	switch pc.Type() {
	case Pawn:
		out = genPawnTargets(p, from, side, out)
	case Knight:
		out = genStepTargets(p, from, side, knightJumps[:], out)
	case Bishop:
		out = genSliderTargets(p, from, side, diagDirs[:], out)
	case Rook:
		out = genSliderTargets(p, from, side, orthDirs[:], out)
	case Queen:
		out = genSliderTargets(p, from, side, orthDirs[:], out)
		out = genSliderTargets(p, from, side, diagDirs[:], out)
	case King:
		out = genStepTargets(p, from, side, orthDirs[:], out)
		out = genStepTargets(p, from, side, diagDirs[:], out)
	}
	return out
}

// LegalTargets 某个子的合法目标格：过滤掉走完后自己王被攻击的
func (p *Position) LegalTargets(from Coord) []Coord {
	pc := p.At(from)
	if pc == 0 {
		return nil
	}
	pseudo := p.PseudoTargets(from)
	out := pseudo[:0]
	for _, to := range pseudo {
		if p.leavesKingSafe(from, to) {
			out = append(out, to)
		}
	}
	return out
}

// LegalMoves 轮到走棋一方的所有合法走法，按格子下标顺序
func (p *Position) LegalMoves() []Move {
	if p.HasPendingPromotion {
		return nil
	}
	var moves []Move
	for i, pc := range p.Board.Cells {
		if pc == 0 || pc.Color() != p.SideToMove {
			continue
		}
		from := cellCoords[i]
		for _, to := range p.LegalTargets(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// IsLegal 判断 mv 是否在当前合法走法里
func (p *Position) IsLegal(mv Move) bool {
	pc := p.At(mv.From)
	if pc == 0 || pc.Color() != p.SideToMove || p.HasPendingPromotion {
		return false
	}
	for _, to := range p.LegalTargets(mv.From) {
		if to == mv.To {
			return true
		}
	}
	return false
}

// 只在棋盘副本上试走，不碰吃子记录
func (p *Position) leavesKingSafe(from, to Coord) bool {
	tmp := Position{Board: p.Board}
	pc := tmp.At(from)
	side := pc.Color()
	if victim, ok := p.EnPassantVictim(Move{From: from, To: to}); ok {
		tmp.Set(victim, 0)
	}
	tmp.Set(to, pc)
	tmp.Set(from, 0)
	king, ok := tmp.KingSquare(side)
	if !ok {
		return true
	}
	return !tmp.IsAttacked(king, side.Opponent())
}

// 被过路吃掉的兵：在目标格后面一格（相对吃子方）
func enPassantVictim(target Coord, capturer Color) Coord {
	fwd := pawnForward(capturer)
	return Coord{Q: target.Q - fwd.Q, R: target.R - fwd.R}
}
