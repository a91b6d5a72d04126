// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// _DEFAULTMAXCANDIDATES bounds the candidate-value count the DAG
// Builder will recurse on before failing with an OomError, guarding
// against unbounded Go stack growth on pathological input
// (SPEC_FULL.md §7).
const _DEFAULTMAXCANDIDATES int = 4096
