// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows catalog query rows with --filter expressions.
//
// Each expression is key, operator and target. Expressions are separated by
// commas, or by the value of CLOUDSCALE_FILTER_DELIM when targets contain
// commas.
//
// Operators:
//
//   - = : exact match
//   - ~ : case-insensitive match; any two names of one provider match, so
//     provider~gcp keeps the Google Cloud Storage row
//   - ^ : prefix match
//   - < : less than (numeric when the value is a number)
//   - > : greater than (numeric when the value is a number)
//   - @ : contains substring, or list membership
//   - / : regular expression match
//
// Any operator may be negated with a leading '!'. On list values (features,
// tiers) a string operator matches when any element matches.
//
// Examples:
//
//   - "id=aws"
//   - "tiers@Archive"
//   - "features/replication"
//   - "name!^Google"
//   - "provider~azure"
//
// Keys are matched against the OutputKey of the query's attrs. Unknown keys
// are reported once on stderr and skipped.
package filters
