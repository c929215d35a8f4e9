// Package ui contains the Bubble Tea program that drives the encoder menu
// from the keyboard.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are matched against the key map and translated into
//     menu.Event values. Arrow keys step a console.Counter by one detent, so
//     the navigator sees the same raw counter samples a hardware encoder
//     would produce and filters them the same way.
//   - EventMsg lets other goroutines inject events through Program.Send.
//
// State ownership:
//   - The menu.Navigator owns the current item. The Model is its render sink
//     and keeps the last frame it was given; View only formats that frame
//     plus an optional value line, so nothing is redrawn unless the
//     navigator pushed a new frame or the window changed.
package ui
