// Copyright (C) 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extensions

func set(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

var instance = set(
	"VK_KHR_surface",
	"VK_KHR_display",
	"VK_KHR_xlib_surface",
	"VK_KHR_xcb_surface",
	"VK_KHR_wayland_surface",
	"VK_KHR_android_surface",
	"VK_KHR_win32_surface",
	"VK_KHR_get_physical_device_properties2",
	"VK_KHR_device_group_creation",
	"VK_KHR_external_memory_capabilities",
	"VK_KHR_external_semaphore_capabilities",
	"VK_KHR_external_fence_capabilities",
	"VK_KHR_get_surface_capabilities2",
	"VK_KHR_get_display_properties2",
	"VK_KHR_surface_protected_capabilities",
	"VK_KHR_portability_enumeration",
	"VK_EXT_debug_report",
	"VK_EXT_debug_utils",
	"VK_EXT_validation_flags",
	"VK_EXT_validation_features",
	"VK_EXT_headless_surface",
	"VK_EXT_metal_surface",
	"VK_EXT_swapchain_colorspace",
	"VK_EXT_direct_mode_display",
	"VK_EXT_acquire_xlib_display",
	"VK_EXT_display_surface_counter",
	"VK_EXT_surface_maintenance1",
	"VK_MVK_ios_surface",
	"VK_MVK_macos_surface",
	"VK_NV_external_memory_capabilities",
	"VK_GOOGLE_surfaceless_query",
	"VK_LUNARG_direct_driver_loading",
)

var device = set(
	"VK_KHR_swapchain",
	"VK_KHR_display_swapchain",
	"VK_KHR_push_descriptor",
	"VK_KHR_incremental_present",
	"VK_KHR_shared_presentable_image",
	"VK_KHR_maintenance1",
	"VK_KHR_maintenance2",
	"VK_KHR_maintenance3",
	"VK_KHR_maintenance4",
	"VK_KHR_16bit_storage",
	"VK_KHR_8bit_storage",
	"VK_KHR_dedicated_allocation",
	"VK_KHR_get_memory_requirements2",
	"VK_KHR_bind_memory2",
	"VK_KHR_sampler_ycbcr_conversion",
	"VK_KHR_variable_pointers",
	"VK_KHR_multiview",
	"VK_KHR_descriptor_update_template",
	"VK_KHR_shader_draw_parameters",
	"VK_KHR_external_memory",
	"VK_KHR_external_semaphore",
	"VK_KHR_external_fence",
	"VK_KHR_device_group",
	"VK_KHR_relaxed_block_layout",
	"VK_KHR_storage_buffer_storage_class",
	"VK_KHR_draw_indirect_count",
	"VK_KHR_create_renderpass2",
	"VK_KHR_driver_properties",
	"VK_KHR_shader_float_controls",
	"VK_KHR_depth_stencil_resolve",
	"VK_KHR_timeline_semaphore",
	"VK_KHR_vulkan_memory_model",
	"VK_KHR_shader_float16_int8",
	"VK_KHR_image_format_list",
	"VK_KHR_sampler_mirror_clamp_to_edge",
	"VK_KHR_imageless_framebuffer",
	"VK_KHR_buffer_device_address",
	"VK_KHR_separate_depth_stencil_layouts",
	"VK_KHR_uniform_buffer_standard_layout",
	"VK_KHR_shader_subgroup_extended_types",
	"VK_KHR_spirv_1_4",
	"VK_KHR_shader_atomic_int64",
	"VK_KHR_dynamic_rendering",
	"VK_KHR_synchronization2",
	"VK_KHR_copy_commands2",
	"VK_KHR_format_feature_flags2",
	"VK_KHR_shader_integer_dot_product",
	"VK_KHR_shader_non_semantic_info",
	"VK_KHR_shader_terminate_invocation",
	"VK_KHR_zero_initialize_workgroup_memory",
	"VK_KHR_pipeline_executable_properties",
	"VK_KHR_performance_query",
	"VK_KHR_portability_subset",
	"VK_EXT_descriptor_indexing",
	"VK_EXT_host_query_reset",
	"VK_EXT_sampler_filter_minmax",
	"VK_EXT_scalar_block_layout",
	"VK_EXT_separate_stencil_usage",
	"VK_EXT_shader_viewport_index_layer",
	"VK_EXT_inline_uniform_block",
	"VK_EXT_pipeline_creation_cache_control",
	"VK_EXT_pipeline_creation_feedback",
	"VK_EXT_private_data",
	"VK_EXT_extended_dynamic_state",
	"VK_EXT_extended_dynamic_state2",
	"VK_EXT_texel_buffer_alignment",
	"VK_EXT_texture_compression_astc_hdr",
	"VK_EXT_4444_formats",
	"VK_EXT_image_robustness",
	"VK_EXT_subgroup_size_control",
	"VK_EXT_tooling_info",
	"VK_EXT_ycbcr_2plane_444_formats",
	"VK_EXT_shader_demote_to_helper_invocation",
	"VK_EXT_debug_marker",
	"VK_EXT_buffer_device_address",
	"VK_EXT_depth_range_unrestricted",
	"VK_EXT_depth_clip_enable",
	"VK_EXT_depth_clip_control",
	"VK_EXT_transform_feedback",
	"VK_EXT_provoking_vertex",
	"VK_EXT_line_rasterization",
	"VK_EXT_primitive_topology_list_restart",
	"VK_EXT_custom_border_color",
	"VK_EXT_border_color_swizzle",
	"VK_EXT_device_memory_report",
	"VK_EXT_device_address_binding_report",
	"VK_EXT_index_type_uint8",
	"VK_EXT_memory_budget",
	"VK_EXT_full_screen_exclusive",
	"VK_AMD_negative_viewport_height",
	"VK_AMD_draw_indirect_count",
	"VK_AMD_gpu_shader_half_float",
	"VK_AMD_gpu_shader_int16",
	"VK_AMD_shader_info",
	"VK_NV_dedicated_allocation",
	"VK_NV_external_memory",
	"VK_NV_glsl_shader",
	"VK_NV_device_diagnostic_checkpoints",
	"VK_INTEL_performance_query",
	"VK_ARM_rasterization_order_attachment_access",
	"VK_IMG_format_pvrtc",
)

func promoted(target string) Deprecation { return Deprecation{Promoted, target} }
func obsoleted(target string) Deprecation { return Deprecation{Obsoleted, target} }
func deprecatedBy(target string) Deprecation { return Deprecation{DeprecatedReason, target} }

var deprecated = map[string]Deprecation{
	// Instance extensions.
	"VK_KHR_get_physical_device_properties2": promoted("VK_VERSION_1_1"),
	"VK_KHR_device_group_creation":           promoted("VK_VERSION_1_1"),
	"VK_KHR_external_memory_capabilities":    promoted("VK_VERSION_1_1"),
	"VK_KHR_external_semaphore_capabilities": promoted("VK_VERSION_1_1"),
	"VK_KHR_external_fence_capabilities":     promoted("VK_VERSION_1_1"),
	"VK_EXT_debug_report":                    deprecatedBy("VK_EXT_debug_utils"),
	"VK_EXT_validation_flags":                deprecatedBy("VK_EXT_validation_features"),
	"VK_MVK_ios_surface":                     deprecatedBy("VK_EXT_metal_surface"),
	"VK_MVK_macos_surface":                   deprecatedBy("VK_EXT_metal_surface"),
	"VK_NV_external_memory_capabilities":     deprecatedBy("VK_KHR_external_memory_capabilities"),

	// Device extensions promoted to 1.1.
	"VK_KHR_maintenance1":                 promoted("VK_VERSION_1_1"),
	"VK_KHR_maintenance2":                 promoted("VK_VERSION_1_1"),
	"VK_KHR_maintenance3":                 promoted("VK_VERSION_1_1"),
	"VK_KHR_16bit_storage":                promoted("VK_VERSION_1_1"),
	"VK_KHR_dedicated_allocation":         promoted("VK_VERSION_1_1"),
	"VK_KHR_get_memory_requirements2":     promoted("VK_VERSION_1_1"),
	"VK_KHR_bind_memory2":                 promoted("VK_VERSION_1_1"),
	"VK_KHR_sampler_ycbcr_conversion":     promoted("VK_VERSION_1_1"),
	"VK_KHR_variable_pointers":            promoted("VK_VERSION_1_1"),
	"VK_KHR_multiview":                    promoted("VK_VERSION_1_1"),
	"VK_KHR_descriptor_update_template":   promoted("VK_VERSION_1_1"),
	"VK_KHR_shader_draw_parameters":       promoted("VK_VERSION_1_1"),
	"VK_KHR_external_memory":              promoted("VK_VERSION_1_1"),
	"VK_KHR_external_semaphore":           promoted("VK_VERSION_1_1"),
	"VK_KHR_external_fence":               promoted("VK_VERSION_1_1"),
	"VK_KHR_device_group":                 promoted("VK_VERSION_1_1"),
	"VK_KHR_relaxed_block_layout":         promoted("VK_VERSION_1_1"),
	"VK_KHR_storage_buffer_storage_class": promoted("VK_VERSION_1_1"),

	// Device extensions promoted to 1.2.
	"VK_KHR_8bit_storage":                   promoted("VK_VERSION_1_2"),
	"VK_KHR_draw_indirect_count":            promoted("VK_VERSION_1_2"),
	"VK_KHR_create_renderpass2":             promoted("VK_VERSION_1_2"),
	"VK_KHR_driver_properties":              promoted("VK_VERSION_1_2"),
	"VK_KHR_shader_float_controls":          promoted("VK_VERSION_1_2"),
	"VK_KHR_depth_stencil_resolve":          promoted("VK_VERSION_1_2"),
	"VK_KHR_timeline_semaphore":             promoted("VK_VERSION_1_2"),
	"VK_KHR_vulkan_memory_model":            promoted("VK_VERSION_1_2"),
	"VK_KHR_shader_float16_int8":            promoted("VK_VERSION_1_2"),
	"VK_KHR_image_format_list":              promoted("VK_VERSION_1_2"),
	"VK_KHR_sampler_mirror_clamp_to_edge":   promoted("VK_VERSION_1_2"),
	"VK_KHR_imageless_framebuffer":          promoted("VK_VERSION_1_2"),
	"VK_KHR_buffer_device_address":          promoted("VK_VERSION_1_2"),
	"VK_KHR_separate_depth_stencil_layouts": promoted("VK_VERSION_1_2"),
	"VK_KHR_uniform_buffer_standard_layout": promoted("VK_VERSION_1_2"),
	"VK_KHR_shader_subgroup_extended_types": promoted("VK_VERSION_1_2"),
	"VK_KHR_spirv_1_4":                      promoted("VK_VERSION_1_2"),
	"VK_KHR_shader_atomic_int64":            promoted("VK_VERSION_1_2"),
	"VK_EXT_descriptor_indexing":            promoted("VK_VERSION_1_2"),
	"VK_EXT_host_query_reset":               promoted("VK_VERSION_1_2"),
	"VK_EXT_sampler_filter_minmax":          promoted("VK_VERSION_1_2"),
	"VK_EXT_scalar_block_layout":            promoted("VK_VERSION_1_2"),
	"VK_EXT_separate_stencil_usage":         promoted("VK_VERSION_1_2"),
	"VK_EXT_shader_viewport_index_layer":    promoted("VK_VERSION_1_2"),

	// Device extensions promoted to 1.3.
	"VK_KHR_dynamic_rendering":                  promoted("VK_VERSION_1_3"),
	"VK_KHR_synchronization2":                   promoted("VK_VERSION_1_3"),
	"VK_KHR_copy_commands2":                     promoted("VK_VERSION_1_3"),
	"VK_KHR_format_feature_flags2":              promoted("VK_VERSION_1_3"),
	"VK_KHR_maintenance4":                       promoted("VK_VERSION_1_3"),
	"VK_KHR_shader_integer_dot_product":         promoted("VK_VERSION_1_3"),
	"VK_KHR_shader_non_semantic_info":           promoted("VK_VERSION_1_3"),
	"VK_KHR_shader_terminate_invocation":        promoted("VK_VERSION_1_3"),
	"VK_KHR_zero_initialize_workgroup_memory":   promoted("VK_VERSION_1_3"),
	"VK_EXT_inline_uniform_block":               promoted("VK_VERSION_1_3"),
	"VK_EXT_pipeline_creation_cache_control":    promoted("VK_VERSION_1_3"),
	"VK_EXT_pipeline_creation_feedback":         promoted("VK_VERSION_1_3"),
	"VK_EXT_private_data":                       promoted("VK_VERSION_1_3"),
	"VK_EXT_extended_dynamic_state":             promoted("VK_VERSION_1_3"),
	"VK_EXT_extended_dynamic_state2":            promoted("VK_VERSION_1_3"),
	"VK_EXT_texel_buffer_alignment":             promoted("VK_VERSION_1_3"),
	"VK_EXT_texture_compression_astc_hdr":       promoted("VK_VERSION_1_3"),
	"VK_EXT_4444_formats":                       promoted("VK_VERSION_1_3"),
	"VK_EXT_image_robustness":                   promoted("VK_VERSION_1_3"),
	"VK_EXT_subgroup_size_control":              promoted("VK_VERSION_1_3"),
	"VK_EXT_tooling_info":                       promoted("VK_VERSION_1_3"),
	"VK_EXT_ycbcr_2plane_444_formats":           promoted("VK_VERSION_1_3"),
	"VK_EXT_shader_demote_to_helper_invocation": promoted("VK_VERSION_1_3"),

	// Vendor and extension replacements.
	"VK_EXT_debug_marker":             promoted("VK_EXT_debug_utils"),
	"VK_AMD_draw_indirect_count":      promoted("VK_KHR_draw_indirect_count"),
	"VK_AMD_negative_viewport_height": obsoleted("VK_KHR_maintenance1"),
	"VK_AMD_gpu_shader_half_float":    deprecatedBy("VK_KHR_shader_float16_int8"),
	"VK_AMD_gpu_shader_int16":         deprecatedBy("VK_KHR_shader_float16_int8"),
	"VK_NV_dedicated_allocation":      deprecatedBy("VK_KHR_dedicated_allocation"),
	"VK_NV_external_memory":           deprecatedBy("VK_KHR_external_memory"),
	"VK_EXT_buffer_device_address":    deprecatedBy("VK_KHR_buffer_device_address"),
	"VK_NV_glsl_shader":               deprecatedBy(""),
	"VK_IMG_format_pvrtc":             deprecatedBy(""),
}

var specialUse = map[string][]string{
	"VK_EXT_debug_report":                    {"debugging"},
	"VK_EXT_debug_utils":                     {"debugging"},
	"VK_EXT_debug_marker":                    {"debugging"},
	"VK_EXT_validation_flags":                {"debugging"},
	"VK_EXT_validation_features":             {"debugging"},
	"VK_EXT_tooling_info":                    {"debugging"},
	"VK_EXT_device_address_binding_report":   {"debugging", "devtools"},
	"VK_EXT_device_memory_report":            {"devtools"},
	"VK_KHR_pipeline_executable_properties":  {"devtools"},
	"VK_KHR_performance_query":               {"devtools"},
	"VK_EXT_pipeline_creation_feedback":      {"devtools"},
	"VK_INTEL_performance_query":             {"devtools"},
	"VK_AMD_shader_info":                     {"devtools"},
	"VK_NV_device_diagnostic_checkpoints":    {"devtools"},
	"VK_EXT_depth_range_unrestricted":        {"d3demulation"},
	"VK_EXT_depth_clip_enable":               {"d3demulation"},
	"VK_EXT_transform_feedback":              {"glemulation", "d3demulation", "devtools"},
	"VK_EXT_provoking_vertex":                {"glemulation"},
	"VK_EXT_primitive_topology_list_restart": {"glemulation"},
	"VK_EXT_depth_clip_control":              {"glemulation"},
	"VK_EXT_custom_border_color":             {"glemulation", "d3demulation"},
	"VK_EXT_border_color_swizzle":            {"glemulation", "d3demulation"},
	"VK_EXT_line_rasterization":              {"cadsupport"},
}
