// Package discovery maps logical backend plugin ids to concrete base URLs,
// either from explicit per-plugin configuration or from the portal's
// {backend}/api/{plugin} convention.
package discovery
