// Package config assembles raw, possibly partial, user input into a finished
// theme configuration: registry defaults fill absent keys, derived fields are
// computed in a fixed order, and the merged result is validated. Assembly is
// deterministic and never fails outright; callers inspect Result.Valid.
package config
