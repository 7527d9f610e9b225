// SPDX-License-Identifier: MIT

/*
Package pathwinder wires the building-block packages (resolve, rules,
registry, director, config, configwatch) into the two entry points most
embedding applications want.

Basic flow:
  - load a configuration document from disk (config.LoadDocumentFile)
  - build a registry.Registry from it and finalize it (New / Load)
  - ask the resulting System for a Director to redirect file operations
    and directory enumerations

For applications that want to pick up edited configuration files without
a restart, LiveSystem layers a configwatch.Watcher over System and
atomically swaps in a freshly built System whenever the watched file
changes.
*/
package pathwinder
