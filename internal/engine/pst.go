package engine

import "hexchess/internal/hexchess"

// 位置表按白方视角写，(q, r) -> 加成；表里没有的格子为 0。
// 进程启动时初始化一次，之后只读。

type squareTable map[hexchess.Coord]int

var pawnTable = squareTable{
	// 起始格
	{Q: -4, R: 5}: 0, {Q: -3, R: 4}: 0, {Q: -2, R: 3}: 0, {Q: -1, R: 2}: 0, {Q: 0, R: 1}: 0,
	{Q: 1, R: 1}: 0, {Q: 2, R: 1}: 0, {Q: 3, R: 1}: 0, {Q: 4, R: 1}: 0,

	{Q: -4, R: 4}: 5, {Q: -3, R: 3}: 5, {Q: -2, R: 2}: 5, {Q: -1, R: 1}: 5, {Q: 0, R: 0}: 10,
	{Q: 1, R: 0}: 10, {Q: 2, R: 0}: 5, {Q: 3, R: 0}: 5, {Q: 4, R: 0}: 5,

	// 中心
	{Q: -3, R: 2}: 10, {Q: -2, R: 1}: 15, {Q: -1, R: 0}: 20, {Q: 0, R: -1}: 25,
	{Q: 1, R: -1}: 20, {Q: 2, R: -1}: 15, {Q: 3, R: -1}: 10,

	{Q: -2, R: 0}: 20, {Q: -1, R: -1}: 30, {Q: 0, R: -2}: 35, {Q: 1, R: -2}: 30, {Q: 2, R: -2}: 20,

	// 接近升变
	{Q: -1, R: -2}: 40, {Q: 0, R: -3}: 50, {Q: 1, R: -3}: 40,
	{Q: 0, R: -4}: 60, {Q: 1, R: -4}: 60,
}

var knightTable = squareTable{
	{Q: 0, R: 0}: 30, {Q: 1, R: -1}: 25, {Q: -1, R: 1}: 25, {Q: 0, R: 1}: 20, {Q: 1, R: 0}: 20,
	{Q: 0, R: -1}: 20, {Q: -1, R: 0}: 20,

	{Q: 1, R: 1}: 15, {Q: 2, R: -1}: 15, {Q: 2, R: -2}: 10, {Q: -1, R: 2}: 15, {Q: -2, R: 2}: 10,
	{Q: 1, R: -2}: 15, {Q: -1, R: -1}: 10, {Q: -2, R: 1}: 10,

	// 边角
	{Q: 3, R: 2}: -10, {Q: 4, R: 1}: -20, {Q: -3, R: 5}: -20, {Q: -4, R: 5}: -30,
	{Q: 3, R: -5}: -20, {Q: 4, R: -5}: -30, {Q: -3, R: -2}: -10,
}

var bishopTable = squareTable{
	{Q: 0, R: 0}: 20, {Q: 1, R: -1}: 15, {Q: -1, R: 1}: 15,
	{Q: 0, R: 1}: 10, {Q: 1, R: 0}: 10, {Q: 0, R: -1}: 10, {Q: -1, R: 0}: 10,

	{Q: 2, R: -2}: 15, {Q: -2, R: 2}: 15, {Q: 1, R: 1}: 10, {Q: -1, R: -1}: 10,

	{Q: 4, R: 1}: -10, {Q: -4, R: 5}: -10, {Q: 4, R: -5}: -10, {Q: -4, R: -1}: -10,
}

var rookTable = squareTable{
	{Q: 3, R: 2}: 0, {Q: -3, R: 5}: 0,

	{Q: 0, R: -1}: 10, {Q: 1, R: -1}: 10, {Q: -1, R: -1}: 10,
	{Q: 0, R: -2}: 15, {Q: 1, R: -2}: 15, {Q: -1, R: -2}: 15,

	{Q: 0, R: -3}: 20, {Q: 1, R: -3}: 20, {Q: -1, R: -3}: 20,
	{Q: 0, R: -4}: 25, {Q: 1, R: -4}: 25,
}

var queenTable = squareTable{
	{Q: 0, R: 0}: 10, {Q: 1, R: -1}: 10, {Q: -1, R: 1}: 10,
	{Q: 0, R: 1}: 5, {Q: 1, R: 0}: 5, {Q: 0, R: -1}: 5, {Q: -1, R: 0}: 5,
	{Q: -1, R: 5}: -20, // 初始格，早出后扣分
}

// 王：中局躲在底线，残局走向中心
var kingTableMG = squareTable{
	{Q: 1, R: 4}: 20, {Q: 0, R: 4}: 15, {Q: 2, R: 3}: 10,

	{Q: 0, R: 0}: -40, {Q: 1, R: -1}: -30, {Q: -1, R: 1}: -30,
	{Q: 0, R: 1}: -20, {Q: 1, R: 0}: -20, {Q: 0, R: -1}: -20, {Q: -1, R: 0}: -20,
}

var kingTableEG = squareTable{
	{Q: 0, R: 0}: 30, {Q: 1, R: -1}: 25, {Q: -1, R: 1}: 25,
	{Q: 0, R: 1}: 20, {Q: 1, R: 0}: 20, {Q: 0, R: -1}: 20, {Q: -1, R: 0}: 20,

	{Q: 1, R: 4}: 0, {Q: 0, R: 4}: 0, {Q: 2, R: 3}: 5,
}

var pieceSquareTables = map[hexchess.PieceType]squareTable{
	hexchess.Pawn:   pawnTable,
	hexchess.Knight: knightTable,
	hexchess.Bishop: bishopTable,
	hexchess.Rook:   rookTable,
	hexchess.Queen:  queenTable,
}

// 中心七格（走法排序用）
var centerCells = map[hexchess.Coord]bool{
	{Q: 0, R: 0}: true, {Q: 1, R: -1}: true, {Q: -1, R: 1}: true, {Q: 0, R: 1}: true,
	{Q: 1, R: 0}: true, {Q: 0, R: -1}: true, {Q: -1, R: 0}: true,
}
