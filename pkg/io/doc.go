// Package io reads and writes canvas documents as JSON.
//
// # JSON Format
//
// A document is an object with an ordered "elements" array:
//
//	{
//	  "name": "moodboard",
//	  "version": "1",
//	  "background": "#ffffff",
//	  "elements": [
//	    {"id": "hero", "type": "image", "src": "hero.png",
//	     "x": 0, "y": 0, "width": 400, "height": 300},
//	    {"id": "board", "type": "frame", "backgroundColor": "#eee",
//	     "x": -50, "y": -50, "width": 900, "height": 600}
//	  ]
//	}
//
// "width" and "height" at the top level are optional; a document without
// them is an infinite canvas. A bare array of elements is accepted as a
// document with only elements.
//
// # Element Fields
//
// Shared: id, name, type ("image" or "frame"), x, y, width, height,
// rotation, opacity, locked, visible.
//
// Images add src, scaleX and scaleY. Frames add backgroundColor.
//
// # Sanitization
//
// Input is loosely typed. [ReadJSON] runs every element through
// [canvas.Sanitize], so numeric strings are parsed, missing sizes default to
// 100 and missing or duplicate ids are replaced. Only malformed JSON is an
// error.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write the document back in the same format,
// indented. Element order is preserved, so a read followed by a write is
// stable apart from the sanitization defaults.
package io
