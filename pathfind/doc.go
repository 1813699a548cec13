// Package pathfind extracts concrete cell paths from a scanned
// distfield.DistanceField: a shared greedy gradient-descent walk, reused by
// find_path, find_attack_path, find_flee_path, find_technique_path, and
// FindLargeMoverPath.
//
// Every extractor returns a Result carrying CutShort, so a caller can
// distinguish "target unreachable" from "mover already at a goal" on an
// empty path.
package pathfind
