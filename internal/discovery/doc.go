// SPDX-License-Identifier: MPL-2.0

// Package discovery handles finding dialect description files.
//
// Discovery walks the same candidate path set the resolver uses, in the same
// precedence order (--path flags, IRDLPATH, configured search_paths, the user
// dialects directory), and reports every .irdl file it finds. Files whose
// module-name stem already appeared in an earlier directory are marked
// shadowed so listings reflect what resolution would actually pick.
package discovery
