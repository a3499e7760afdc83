// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

// Dbc2dbf converts DBC containers (PKWARE DCL compressed dBASE tables) into
// plain DBF files. Both paths are used exactly as given, extension
// included. An existing output is only replaced with --force.
//
// With --inspect it prints the container layout without decompressing.
//
// Configuration comes from the file named by --config or DBC2DBF_CONFIG;
// flags override it. DBC2DBF_DEBUG enables debug logging unless
// --log-level is given.
//
// Exit status is 0 on success, 1 when a conversion fails and 2 for usage
// errors.
package main
